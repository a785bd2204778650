package wizard

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	reportdomain "civiq/internal/modules/report/domain"
	"civiq/internal/modules/report/dto"
	"civiq/internal/ui/theme"
)

// reportPort is the minimal surface this view needs from the report
// workflow.
type reportPort interface {
	Submit(ctx context.Context, input dto.SubmitInput) (dto.SubmitOutput, error)
	Classify(ctx context.Context, photoName string, photo []byte) (string, error)
	AcquirePosition(ctx context.Context) (dto.PositionOutput, error)
}

// ─── async messages ───────────────────────────────────────────────────────────

type classifiedMsg struct {
	category string
	err      error
}

type positionMsg struct {
	out dto.PositionOutput
	err error
}

type submittedMsg struct {
	out dto.SubmitOutput
	err error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Next     key.Binding
	Back     key.Binding
	Field    key.Binding
	Category key.Binding
	Locate   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Next:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next step")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Field:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Category: key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "category")),
		Locate:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "detect position")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Back, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Back, k.Field},
		{k.Category, k.Locate},
		{k.Help, k.Quit},
	}
}

// ─── fields ──────────────────────────────────────────────────────────────────

const (
	fieldTitle = iota
	fieldDescription
	fieldPhoto
	fieldCategory
	fieldCount
)

const (
	locFieldLat = iota
	locFieldLng
	locFieldCount
)

// ─── model ───────────────────────────────────────────────────────────────────

// Model drives the three-step submission workflow. All state
// transitions go through the domain wizard; the view only collects
// input and renders.
type Model struct {
	report reportPort
	wizard *reportdomain.Wizard
	keys   keyMap
	help   help.Model

	title       textinput.Model
	description textinput.Model
	photoPath   textinput.Model
	lat         textinput.Model
	lng         textinput.Model
	field       int
	locField    int

	categories    []reportdomain.Category
	categoryIndex int

	spin   spinner.Model
	status string
	result dto.SubmitOutput
	width  int
}

func New(report reportPort) Model {
	title := textinput.New()
	title.Placeholder = "short summary"
	title.Focus()
	title.CharLimit = 120

	description := textinput.New()
	description.Placeholder = "what did you see?"
	description.CharLimit = 500

	photoPath := textinput.New()
	photoPath.Placeholder = "path/to/photo.jpg"

	lat := textinput.New()
	lat.Placeholder = "latitude"
	lng := textinput.New()
	lng.Placeholder = "longitude"

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		report:      report,
		wizard:      reportdomain.NewWizard(),
		keys:        defaultKeys(),
		help:        help.New(),
		title:       title,
		description: description,
		photoPath:   photoPath,
		lat:         lat,
		lng:         lng,
		categories:  reportdomain.Categories(),
		spin:        spin,
		status:      "describe the problem",
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Result returns the submission outcome once the workflow is done.
func (m Model) Result() (dto.SubmitOutput, bool) {
	return m.result, m.wizard.Step() == reportdomain.StepDone
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case classifiedMsg:
		// Advisory only. Failures keep the current category.
		if msg.err == nil {
			m.wizard.SuggestCategory(reportdomain.Category(msg.category))
			m.syncCategoryIndex()
			m.status = "suggested category: " + msg.category
		}
		return m, nil

	case positionMsg:
		if msg.err != nil {
			m.status = "position: " + msg.err.Error()
			return m, nil
		}
		m.lat.SetValue(strconv.FormatFloat(msg.out.Lat, 'f', -1, 64))
		m.lng.SetValue(strconv.FormatFloat(msg.out.Lng, 'f', -1, 64))
		m.status = "position detected"
		return m, nil

	case submittedMsg:
		if msg.err != nil {
			if backErr := m.wizard.FailSubmit(); backErr != nil {
				m.status = backErr.Error()
				return m, nil
			}
			m.status = "submission failed: " + msg.err.Error()
			return m, nil
		}
		if err := m.wizard.Complete(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.result = msg.out
		if msg.out.Queued {
			m.status = "offline: report saved locally as " + msg.out.LocalID
		} else {
			m.status = "report submitted: " + msg.out.Problem.ID
		}
		return m, tea.Quit

	case spinner.TickMsg:
		if m.wizard.Step() == reportdomain.StepSubmitting {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInputs(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Help) && m.field != fieldTitle && m.field != fieldDescription {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.wizard.Step() {
	case reportdomain.StepDetails:
		return m.handleDetailsKey(msg)
	case reportdomain.StepLocation:
		return m.handleLocationKey(msg)
	case reportdomain.StepReview:
		return m.handleReviewKey(msg)
	}
	return m, nil
}

func (m Model) handleDetailsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Field):
		m.field = (m.field + 1) % fieldCount
		m.focusDetailsField()
		return m, nil

	case key.Matches(msg, m.keys.Category) && m.field == fieldCategory:
		delta := 1
		if msg.String() == "left" {
			delta = len(m.categories) - 1
		}
		m.categoryIndex = (m.categoryIndex + delta) % len(m.categories)
		if err := m.wizard.SetCategory(m.categories[m.categoryIndex]); err != nil {
			m.status = err.Error()
		}
		return m, nil

	case key.Matches(msg, m.keys.Next):
		return m.advanceFromDetails()
	}
	return m.updateInputs(msg)
}

func (m Model) advanceFromDetails() (tea.Model, tea.Cmd) {
	if err := m.wizard.SetTitle(strings.TrimSpace(m.title.Value())); err != nil {
		m.status = err.Error()
		return m, nil
	}
	if err := m.wizard.SetDescription(strings.TrimSpace(m.description.Value())); err != nil {
		m.status = err.Error()
		return m, nil
	}

	var classifyCmd tea.Cmd
	if path := strings.TrimSpace(m.photoPath.Value()); path != "" && m.wizard.Draft().PhotoName == "" {
		photo, err := os.ReadFile(path)
		if err != nil {
			m.status = "read photo: " + err.Error()
			return m, nil
		}
		name := filepath.Base(path)
		if err := m.wizard.AttachPhoto(name, photo); err != nil {
			m.status = err.Error()
			return m, nil
		}
		classifyCmd = m.classifyCmd(name, photo)
	}

	if err := m.wizard.Next(); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.field = fieldTitle
	m.locField = locFieldLat
	m.lat.Focus()
	m.lng.Blur()
	m.status = "set the position, r to auto-detect"
	return m, classifyCmd
}

func (m Model) handleLocationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		if err := m.wizard.Back(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.focusDetailsField()
		m.status = "describe the problem"
		return m, nil

	case key.Matches(msg, m.keys.Field):
		m.locField = (m.locField + 1) % locFieldCount
		if m.locField == locFieldLat {
			m.lat.Focus()
			m.lng.Blur()
		} else {
			m.lng.Focus()
			m.lat.Blur()
		}
		return m, nil

	case key.Matches(msg, m.keys.Locate):
		m.status = "detecting position"
		return m, m.positionCmd()

	case key.Matches(msg, m.keys.Next):
		lat, latErr := strconv.ParseFloat(strings.TrimSpace(m.lat.Value()), 64)
		lng, lngErr := strconv.ParseFloat(strings.TrimSpace(m.lng.Value()), 64)
		if latErr != nil || lngErr != nil {
			m.status = "latitude and longitude must be numbers"
			return m, nil
		}
		if err := m.wizard.SetPosition(reportdomain.Position{Lat: lat, Lng: lng}); err != nil {
			m.status = err.Error()
			return m, nil
		}
		if err := m.wizard.Next(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.status = "review and press enter to submit"
		return m, nil
	}
	return m.updateInputs(msg)
}

func (m Model) handleReviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		if err := m.wizard.Back(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.status = "set the position, r to auto-detect"
		return m, nil

	case key.Matches(msg, m.keys.Next):
		if err := m.wizard.BeginSubmit(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.status = "submitting"
		return m, tea.Batch(m.spin.Tick, m.submitCmd())
	}
	return m, nil
}

func (m *Model) focusDetailsField() {
	m.title.Blur()
	m.description.Blur()
	m.photoPath.Blur()
	switch m.field {
	case fieldTitle:
		m.title.Focus()
	case fieldDescription:
		m.description.Focus()
	case fieldPhoto:
		m.photoPath.Focus()
	}
}

func (m *Model) syncCategoryIndex() {
	current := m.wizard.Draft().Category
	for i, category := range m.categories {
		if category == current {
			m.categoryIndex = i
			return
		}
	}
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.title, cmd = m.title.Update(msg)
	cmds = append(cmds, cmd)
	m.description, cmd = m.description.Update(msg)
	cmds = append(cmds, cmd)
	m.photoPath, cmd = m.photoPath.Update(msg)
	cmds = append(cmds, cmd)
	m.lat, cmd = m.lat.Update(msg)
	cmds = append(cmds, cmd)
	m.lng, cmd = m.lng.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m Model) classifyCmd(name string, photo []byte) tea.Cmd {
	return func() tea.Msg {
		category, err := m.report.Classify(context.Background(), name, photo)
		return classifiedMsg{category: category, err: err}
	}
}

func (m Model) positionCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.report.AcquirePosition(context.Background())
		return positionMsg{out: out, err: err}
	}
}

func (m Model) submitCmd() tea.Cmd {
	draft := m.wizard.Draft()
	return func() tea.Msg {
		input := dto.SubmitInput{
			Title:       draft.Title,
			Description: draft.Description,
			Category:    string(draft.Category),
			PhotoName:   draft.PhotoName,
			Photo:       draft.Photo,
		}
		if draft.Position != nil {
			lat, lng := draft.Position.Lat, draft.Position.Lng
			input.Lat, input.Lng = &lat, &lng
		}
		out, err := m.report.Submit(context.Background(), input)
		return submittedMsg{out: out, err: err}
	}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	var body string
	switch m.wizard.Step() {
	case reportdomain.StepDetails:
		body = m.viewDetails()
	case reportdomain.StepLocation:
		body = m.viewLocation()
	case reportdomain.StepReview:
		body = m.viewReview()
	case reportdomain.StepSubmitting:
		body = m.spin.View() + " submitting report"
	case reportdomain.StepDone:
		body = theme.Good.Render("done")
	}

	sections := []string{
		theme.Title.Render("Report a problem") + "  " + theme.Muted.Render(m.stepLabel()),
		theme.Pane.Render(body),
		theme.Muted.Render(m.status),
		m.help.View(m.keys),
	}
	return theme.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) stepLabel() string {
	switch m.wizard.Step() {
	case reportdomain.StepDetails:
		return "step 1/3 · details"
	case reportdomain.StepLocation:
		return "step 2/3 · location"
	case reportdomain.StepReview:
		return "step 3/3 · review"
	default:
		return string(m.wizard.Step())
	}
}

func (m Model) viewDetails() string {
	category := string(m.categories[m.categoryIndex])
	if m.field == fieldCategory {
		category = theme.Hot.Render("< " + category + " >")
	}
	lines := []string{
		m.fieldLabel("Title", fieldTitle) + m.title.View(),
		m.fieldLabel("Description", fieldDescription) + m.description.View(),
		m.fieldLabel("Photo", fieldPhoto) + m.photoPath.View(),
		m.fieldLabel("Category", fieldCategory) + category,
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewLocation() string {
	lines := []string{
		"Latitude   " + m.lat.View(),
		"Longitude  " + m.lng.View(),
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewReview() string {
	draft := m.wizard.Draft()
	photo := "none"
	if draft.PhotoName != "" {
		photo = fmt.Sprintf("%s (%d bytes)", draft.PhotoName, len(draft.Photo))
	}
	position := "unset"
	if draft.Position != nil {
		position = fmt.Sprintf("%.5f, %.5f", draft.Position.Lat, draft.Position.Lng)
	}
	lines := []string{
		theme.Title.Render(draft.Title),
		draft.Description,
		"",
		"Category  " + string(draft.Category),
		"Photo     " + photo,
		"Position  " + position,
	}
	return strings.Join(lines, "\n")
}

func (m Model) fieldLabel(label string, field int) string {
	padded := fmt.Sprintf("%-12s", label)
	if m.field == field {
		return theme.Hot.Render(padded)
	}
	return padded
}
