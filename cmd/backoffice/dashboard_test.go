package main

import (
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"backoffice/internal/config"
	"backoffice/internal/filter"
)

func TestSwitchTo_SingleFetchNoFilterEmission(t *testing.T) {
	var emissions atomic.Int32
	form := filter.New(time.Hour, func(url.Values) { emissions.Add(1) })
	defer form.Stop()

	m := newDashboard(&config.Config{}, nil, form, zap.NewNop())
	defer m.cancelPage()
	form.Set("query", "physics") // filter typed on the previous page

	model, cmd := m.switchTo(pageCourses)
	dm := model.(dashboardModel)
	defer dm.cancelPage()

	assert.NotNil(t, cmd, "the switch issues its own fetch")
	assert.Equal(t, pageCourses, dm.active)
	assert.Empty(t, form.Encode())

	// The silent clear must not produce a second query on top of the
	// direct fetch above.
	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, emissions.Load())
}

func TestHandleKey_CursorMoveDoesNotRearmDebounce(t *testing.T) {
	var emissions atomic.Int32
	form := filter.New(20*time.Millisecond, func(url.Values) { emissions.Add(1) })
	defer form.Stop()

	m := newDashboard(&config.Config{}, nil, form, zap.NewNop())
	defer m.cancelPage()
	m.filterInput.Focus()
	m.filterInput.SetValue("physics")

	model, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyLeft})
	dm := model.(dashboardModel)
	assert.Equal(t, "physics", dm.filterInput.Value())

	// The value did not change, so the debounce timer stays unarmed.
	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, emissions.Load())
}
