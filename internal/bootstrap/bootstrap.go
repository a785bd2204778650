package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	boardinadapter "civiq/internal/modules/board/adapter/in"
	boardoutadapter "civiq/internal/modules/board/adapter/out"
	boardservice "civiq/internal/modules/board/service"
	boardusecase "civiq/internal/modules/board/usecase"
	queueinadapter "civiq/internal/modules/queue/adapter/in"
	queueoutadapter "civiq/internal/modules/queue/adapter/out"
	queueservice "civiq/internal/modules/queue/service"
	queueusecase "civiq/internal/modules/queue/usecase"
	realtimeinadapter "civiq/internal/modules/realtime/adapter/in"
	realtimeoutadapter "civiq/internal/modules/realtime/adapter/out"
	realtimeservice "civiq/internal/modules/realtime/service"
	realtimeusecase "civiq/internal/modules/realtime/usecase"
	reportinadapter "civiq/internal/modules/report/adapter/in"
	reportoutadapter "civiq/internal/modules/report/adapter/out"
	reportout "civiq/internal/modules/report/port/out"
	reportservice "civiq/internal/modules/report/service"
	reportusecase "civiq/internal/modules/report/usecase"
	sessioninadapter "civiq/internal/modules/session/adapter/in"
	sessionoutadapter "civiq/internal/modules/session/adapter/out"
	sessionservice "civiq/internal/modules/session/service"
	sessionusecase "civiq/internal/modules/session/usecase"
	"civiq/internal/platform/clock"
	"civiq/internal/platform/config"
	"civiq/internal/platform/id"
	"civiq/internal/platform/rest"
	uiwizard "civiq/internal/ui/wizard"
)

type App struct {
	SessionCLI  sessioninadapter.CLIHandler
	ReportCLI   reportinadapter.CLIHandler
	QueueCLI    queueinadapter.CLIHandler
	RealtimeCLI realtimeinadapter.CLIHandler
	BoardCLI    boardinadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.UUID{}

	credentialStore := sessionoutadapter.NewFileCredentialStore(cfg.CredentialsPath)
	tokens := sessionoutadapter.NewStoreTokenSource(credentialStore)
	client := rest.New(cfg.APIBaseURL, cfg.RequestTimeout, tokens)

	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewSessionService(sessionoutadapter.NewRESTAuthAPI(client)),
		credentialStore,
	)
	// A 401 on any endpoint invalidates the stored session immediately.
	client.SetUnauthorizedHook(sessionUC.ForceLogout)

	queueStore, err := queueoutadapter.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new queue store: %w", err)
	}
	queueUC := queueusecase.NewInteractor(
		queueservice.NewSyncService(queueStore, queueoutadapter.NewRESTSubmitter(client), ids, clk),
		queueoutadapter.NewPIDFileScheduler(cfg.SyncPIDPath, cfg.HomePath),
		clk,
	)

	realtimeUC := realtimeusecase.NewInteractor(realtimeservice.NewRealtimeService(
		realtimeoutadapter.NewWebsocketChannel(cfg.SocketURL, tokens),
	))

	reportUC := reportusecase.NewInteractor(
		reportservice.NewReportService(
			reportoutadapter.NewRESTProblemAPI(client),
			classifierFor(cfg),
			locatorFor(cfg),
		),
		queueUC,
		realtimeUC,
	)

	boardUC := boardusecase.NewInteractor(boardservice.NewBoardService(boardoutadapter.NewRESTBoardAPI(client)))

	return &App{
		SessionCLI:  sessioninadapter.NewCLIHandler(sessionUC),
		ReportCLI:   reportinadapter.NewCLIHandler(reportUC),
		QueueCLI:    queueinadapter.NewCLIHandler(queueUC),
		RealtimeCLI: realtimeinadapter.NewCLIHandler(realtimeUC),
		BoardCLI:    boardinadapter.NewCLIHandler(boardUC),
	}, nil
}

func classifierFor(cfg config.Config) reportout.Classifier {
	if cfg.ClassifierPlugin == "" {
		return nil
	}
	return reportoutadapter.NewPluginClassifier(cfg.ClassifierPlugin)
}

func locatorFor(cfg config.Config) reportout.Locator {
	var fallback reportout.Locator = reportoutadapter.NewNullLocator()
	if cfg.DefaultPosition.Set {
		fallback = reportoutadapter.NewStaticLocator(cfg.DefaultPosition.Lat, cfg.DefaultPosition.Lng)
	}
	if cfg.LocateCommand == "" {
		return fallback
	}
	return reportoutadapter.NewFallbackLocator(reportoutadapter.NewExecLocator(cfg.LocateCommand), fallback)
}

// RunWizard launches the interactive submission workflow.
func RunWizard(app *App) error {
	program := tea.NewProgram(uiwizard.New(app.ReportCLI), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return err
	}
	model, ok := final.(uiwizard.Model)
	if !ok {
		return nil
	}
	if out, done := model.Result(); done {
		if out.Queued {
			fmt.Printf("offline: report saved locally as %s\n", out.LocalID)
		} else {
			fmt.Printf("report submitted: %s\n", out.Problem.ID)
		}
	}
	return nil
}
