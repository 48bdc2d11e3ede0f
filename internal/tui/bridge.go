package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"campusmap/internal/models"
	"campusmap/internal/viewstate"
)

type stateMsg viewstate.State

type viewMsg struct {
	center models.Coordinates
	zoom   int
}

type markersMsg []models.Marker

type noticeMsg string

// Bridge turns controller callbacks into bubbletea messages. It implements
// viewer.Surface, viewer.MapView and viewer.Notifier. Messages sent before
// Attach are dropped.
type Bridge struct {
	mu   sync.RWMutex
	send func(tea.Msg)
}

func NewBridge() *Bridge { return &Bridge{} }

// Attach routes messages to p.
func (b *Bridge) Attach(p *tea.Program) {
	b.AttachFunc(p.Send)
}

func (b *Bridge) AttachFunc(send func(tea.Msg)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.send = send
}

func (b *Bridge) emit(msg tea.Msg) {
	b.mu.RLock()
	send := b.send
	b.mu.RUnlock()
	if send != nil {
		send(msg)
	}
}

func (b *Bridge) Render(s viewstate.State) { b.emit(stateMsg(s)) }

func (b *Bridge) SetView(center models.Coordinates, zoom int) {
	b.emit(viewMsg{center: center, zoom: zoom})
}

func (b *Bridge) SetMarkers(markers []models.Marker) { b.emit(markersMsg(markers)) }

func (b *Bridge) Notify(msg string) { b.emit(noticeMsg(msg)) }
