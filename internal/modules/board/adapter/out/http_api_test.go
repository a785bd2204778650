package out_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	out "civiq/internal/modules/board/adapter/out"
	"civiq/internal/platform/rest"
)

type noTokens struct{}

func (noTokens) Token() string { return "" }

func TestLeaderboardsDecodesBothBoards(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/problems/leaderboards" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{
			"users":[{"_id":"u-1","name":"A","contributions":5},{"_id":"u-2","name":"B","contributions":9}],
			"volunteers":[{"_id":"v-1","name":"V","points":120}]
		}`))
	}))
	defer server.Close()

	api := out.NewRESTBoardAPI(rest.New(server.URL, time.Second, noTokens{}))
	boards, err := api.Leaderboards(context.Background())
	if err != nil {
		t.Fatalf("leaderboards: %v", err)
	}
	if len(boards.Users) != 2 || len(boards.Volunteers) != 1 {
		t.Fatalf("both boards expected, got %d users %d volunteers", len(boards.Users), len(boards.Volunteers))
	}
	if boards.Users[1].Name != "B" || boards.Users[1].Contributions != 9 {
		t.Fatalf("user entry not decoded: %+v", boards.Users[1])
	}
	if boards.Volunteers[0].Points != 120 {
		t.Fatalf("volunteer entry not decoded: %+v", boards.Volunteers[0])
	}
}
