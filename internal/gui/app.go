// Package gui provides the fyne desktop frontend and the facades shared with
// the REST API and webview bindings.
package gui

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ramonehamilton/replay-companion/internal/storage/models"
)

// recentGamesLimit caps the game list.
const recentGamesLimit = 50

// App represents the GUI application.
type App struct {
	app    fyne.App
	window fyne.Window
	facade *ProfileFacade
	ctx    context.Context
}

// NewApp creates a new GUI application.
func NewApp(services *Services) *App {
	ctx := services.Context
	if ctx == nil {
		ctx = context.Background()
	}
	return &App{
		app:    app.New(),
		facade: NewProfileFacade(services),
		ctx:    ctx,
	}
}

// Run starts the GUI application on the most recent game.
func (a *App) Run() {
	a.window = a.app.NewWindow("Replay Companion")
	a.window.Resize(fyne.NewSize(900, 700))

	a.showLatest()
	a.window.ShowAndRun()
}

// Back implements Navigator by returning to the game list.
func (a *App) Back() {
	a.window.SetContent(a.createGameListView())
}

func (a *App) showLatest() {
	game, err := a.facade.GetLatestGame(a.ctx)
	if err != nil {
		a.window.SetContent(a.NoDataView("Game", userMessage(err)))
		return
	}
	a.showGame(game)
}

func (a *App) showGame(game *models.Game) {
	a.window.SetContent(a.gameScreen(game))
}

// gameScreen is the Game Profile of game with its chart export action.
func (a *App) gameScreen(game *models.Game) fyne.CanvasObject {
	p, err := a.facade.BuildProfile(game)
	if err != nil {
		return a.ErrorView("Game", err, a.createGameListView)
	}

	view := NewGameProfileView(p, a).CreateView()
	export := widget.NewButton("Export Chart", func() {
		a.exportChart(game.ID)
	})
	return container.NewBorder(nil, export, nil, nil, view)
}

// createGameListView creates the recent games view.
func (a *App) createGameListView() fyne.CanvasObject {
	games, err := a.facade.ListGames(a.ctx, recentGamesLimit)
	if err != nil {
		return a.ErrorView("Recent Games", err, a.createGameListView)
	}
	if len(games) == 0 {
		return a.NoDataView("Recent Games", "No games stored yet")
	}

	list := widget.NewList(
		func() int { return len(games) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(gameSummary(games[id]))
		},
	)
	list.OnSelected = func(id widget.ListItemID) {
		a.showGame(games[id])
	}

	title := widget.NewLabelWithStyle("Recent Games", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	return container.NewBorder(title, nil, nil, nil, list)
}

func (a *App) exportChart(gameID string) {
	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			return // cancelled
		}
		path := writer.URI().Path()
		_ = writer.Close()

		if err := a.facade.ExportChart(a.ctx, gameID, path); err != nil {
			log.Printf("Chart export failed: %v", err)
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete", fmt.Sprintf("Chart saved to %s", path), a.window)
	}, a.window)
	save.SetFilter(storage.NewExtensionFileFilter([]string{".html"}))
	save.SetFileName(fmt.Sprintf("game-%s.html", gameID))
	save.Show()
}

func gameSummary(game *models.Game) string {
	return fmt.Sprintf("%s | %s | %d players", game.CreatedAt.Format("2006-01-02 15:04"), game.PlayedOn, len(game.Players))
}
