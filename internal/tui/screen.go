package tui

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tidwall/gjson"

	"github.com/MKhiriev/go-admin-config/internal/app"
	"github.com/MKhiriev/go-admin-config/internal/configmodel"
	"github.com/MKhiriev/go-admin-config/internal/service"
)

const (
	sliderWidth   = 24
	textPreview   = 48
	reservedLines = 16
)

// screen is a page of the console router.
type screen interface {
	tea.Model
	route() string
	title() string
	// capturesInput reports whether keys must reach the screen untouched,
	// e.g. while a text field is edited.
	capturesInput() bool
}

// panelScreen renders one configuration panel as a list of rows and turns
// keys into panel operations.
type panelScreen[M, S any] struct {
	ctx     context.Context
	panel   *service.ConfigPanel[M, S]
	resetFn func(ctx context.Context) error
	name    string
	header  func(S) string
	rows    []row

	cursor  int
	height  int
	editing bool
	input   textinput.Model
	area    textarea.Model
	spinner spinner.Model
	confirm *confirmModel
	status  string
	failed  bool
}

func newPanelScreen[M, S any](
	ctx context.Context,
	panel *service.ConfigPanel[M, S],
	name string,
	rows []row,
	header func(S) string,
	resetFn func(ctx context.Context) error,
) panelScreen[M, S] {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	in := textinput.New()
	in.Width = 60
	in.CharLimit = 200

	area := textarea.New()
	area.SetWidth(60)
	area.SetHeight(6)
	area.ShowLineNumbers = false
	area.CharLimit = 0

	m := panelScreen[M, S]{
		ctx:     ctx,
		panel:   panel,
		resetFn: resetFn,
		name:    name,
		header:  header,
		rows:    rows,
		input:   in,
		area:    area,
		spinner: sp,
	}
	m.cursor = m.step(-1, 1)
	return m
}

func (m panelScreen[M, S]) route() string { return m.panel.Domain().Route() }

func (m panelScreen[M, S]) title() string { return m.name }

func (m panelScreen[M, S]) capturesInput() bool {
	return m.editing || m.confirm != nil
}

func (m panelScreen[M, S]) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, cmdLoad(m.ctx, m.panel))
}

func (m panelScreen[M, S]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	domain := m.panel.Domain()

	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil

	case loadDoneMsg:
		if msg.domain == domain && msg.err != nil {
			return m.withStatus(humanizeError(msg.err), true)
		}
		return m, nil

	case saveDoneMsg:
		if msg.domain != domain {
			return m, nil
		}
		if errors.Is(msg.err, service.ErrSaveInProgress) {
			return m.withStatus(humanizeError(msg.err), true)
		}
		// the panel notice carries the outcome
		return m, cmdExpireNotice(domain)

	case resetDoneMsg:
		if msg.domain != domain {
			return m, nil
		}
		if msg.err != nil {
			return m.withStatus(humanizeError(msg.err), true)
		}
		return m.withStatus(app.MsgConfigReset, false)

	case copiedMsg:
		if msg.domain != domain {
			return m, nil
		}
		if msg.err != nil {
			return m.withStatus(humanizeError(msg.err), true)
		}
		return m.withStatus(app.MsgCopied, false)

	case clearStatusMsg:
		if msg.domain == domain {
			m.status, m.failed = "", false
		}
		return m, nil

	case noticeExpiredMsg:
		if msg.domain == domain {
			m.panel.DismissNotice()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m panelScreen[M, S]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		m.confirm = nil
		if key.Matches(msg, keys.yes) {
			return m, cmdReset(m.ctx, m.panel.Domain(), m.resetFn)
		}
		return m, nil
	}
	if m.editing {
		return m.handleEditKey(msg)
	}

	r := m.rows[m.cursor]
	switch {
	case key.Matches(msg, keys.up):
		m.cursor = m.step(m.cursor, -1)
	case key.Matches(msg, keys.down):
		m.cursor = m.step(m.cursor, 1)
	case key.Matches(msg, keys.toggle), key.Matches(msg, keys.enter):
		switch r.kind {
		case rowToggle:
			return m.patch(r.path, !m.value(r).Bool())
		case rowText:
			return m.startEditing(r)
		}
	case key.Matches(msg, keys.left):
		if r.kind == rowNumber {
			return m.patch(r.path, r.clamp(int(m.value(r).Int())-1))
		}
	case key.Matches(msg, keys.right):
		if r.kind == rowNumber {
			return m.patch(r.path, r.clamp(int(m.value(r).Int())+1))
		}
	case key.Matches(msg, keys.preset):
		if len(r.presets) > 0 {
			return m.patch(r.path, r.nextPreset(int(m.value(r).Int())))
		}
	case key.Matches(msg, keys.save):
		return m, cmdSave(m.ctx, m.panel)
	case key.Matches(msg, keys.reload):
		if m.panel.SaveStatus() != service.SaveIdle {
			return m.withStatus(humanizeError(service.ErrSaveInProgress), true)
		}
		return m, cmdLoad(m.ctx, m.panel)
	case key.Matches(msg, keys.copy):
		if r.kind == rowText {
			return m, cmdCopyToClipboard(m.panel.Domain(), m.value(r).String())
		}
	case key.Matches(msg, keys.reset):
		if m.panel.SaveStatus() != service.SaveIdle {
			return m.withStatus(humanizeError(service.ErrSaveInProgress), true)
		}
		m.confirm = &confirmModel{message: m.name}
	}

	return m, nil
}

func (m panelScreen[M, S]) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	r := m.rows[m.cursor]

	switch {
	case key.Matches(msg, keys.esc):
		m = m.stopEditing()
		return m, nil
	case key.Matches(msg, keys.commit), !r.multiline && key.Matches(msg, keys.enter):
		text := m.input.Value()
		if r.multiline {
			text = m.area.Value()
		}
		m = m.stopEditing()
		return m.patch(r.path, text)
	}

	var cmd tea.Cmd
	if r.multiline {
		m.area, cmd = m.area.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m panelScreen[M, S]) startEditing(r row) (tea.Model, tea.Cmd) {
	m.editing = true
	value := m.value(r).String()
	if r.multiline {
		m.area.SetValue(value)
		return m, m.area.Focus()
	}
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m panelScreen[M, S]) stopEditing() panelScreen[M, S] {
	m.editing = false
	m.input.Blur()
	m.area.Blur()
	return m
}

func (m panelScreen[M, S]) patch(path string, value any) (tea.Model, tea.Cmd) {
	if err := m.panel.ApplyPatch(path, value); err != nil {
		return m.withStatus(humanizeError(err), true)
	}
	return m, nil
}

func (m panelScreen[M, S]) withStatus(status string, failed bool) (tea.Model, tea.Cmd) {
	m.status, m.failed = status, failed
	return m, cmdClearStatus(m.panel.Domain())
}

// step returns the next selectable row from i in direction dir, or i when
// there is none.
func (m panelScreen[M, S]) step(i, dir int) int {
	for j := i + dir; j >= 0 && j < len(m.rows); j += dir {
		if m.rows[j].selectable() {
			return j
		}
	}
	if i < 0 {
		return 0
	}
	return i
}

func (m panelScreen[M, S]) document() []byte {
	data, err := json.Marshal(m.panel.Config())
	if err != nil {
		return nil
	}
	return data
}

func (m panelScreen[M, S]) value(r row) gjson.Result {
	return gjson.GetBytes(m.document(), r.path)
}

func (m panelScreen[M, S]) View() string {
	if m.confirm != nil {
		return m.confirm.View()
	}

	var b strings.Builder
	b.WriteString(m.header(m.panel.Stats()))
	b.WriteString("\n")

	switch m.panel.LoadStatus() {
	case service.LoadLoading:
		b.WriteString(m.spinner.View() + " Cargando configuración...\n")
	case service.LoadError:
		b.WriteString(errorOverlayModel{message: "No se pudo cargar la configuración; se muestran los últimos valores"}.View() + "\n")
	}
	if m.panel.SaveStatus() == service.SaveSaving {
		b.WriteString(m.spinner.View() + " Guardando...\n")
	}
	b.WriteString("\n")

	doc := m.document()
	from, to := m.window()
	for i := from; i < to; i++ {
		b.WriteString(m.renderRow(i, m.rows[i], doc))
		b.WriteString("\n")
	}

	cur := m.rows[m.cursor]
	if m.editing {
		b.WriteString("\n")
		if cur.multiline {
			b.WriteString(overlayBoxStyle.Render(cur.label + "\n\n" + m.area.View()))
		} else {
			b.WriteString(overlayBoxStyle.Render(cur.label + "\n\n" + m.input.View()))
		}
		b.WriteString("\n")
	}
	if cur.multiline {
		if names := configmodel.Placeholders(gjson.GetBytes(doc, cur.path).String()); len(names) > 0 {
			b.WriteString(helpStyle.Render("Variables: {{" + strings.Join(names, "}} {{") + "}}"))
			b.WriteString("\n")
		}
	}

	if n := m.panel.Notice(); n.Kind != service.NoticeNone {
		b.WriteString("\n")
		if n.Kind == service.NoticeError {
			b.WriteString(errorStyle.Render(n.Message))
		} else {
			b.WriteString(successStyle.Render(n.Message))
		}
		b.WriteString("\n")
	}
	if m.status != "" {
		if m.failed {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(successStyle.Render(m.status))
		}
		b.WriteString("\n")
	}

	return renderPage(titleStyle.Render(m.name), b.String(), m.hotKeys())
}

func (m panelScreen[M, S]) renderRow(i int, r row, doc []byte) string {
	if r.kind == rowSection {
		return sectionStyle.Render(r.label)
	}

	cursor := "  "
	if i == m.cursor {
		cursor = cursorStyle.Render("> ")
	}
	v := gjson.GetBytes(doc, r.path)

	switch r.kind {
	case rowToggle:
		return cursor + checkbox(v.Bool()) + " " + r.label
	case rowNumber:
		if len(r.presets) > 0 {
			return cursor + r.label + ": " + slider(int(v.Int()), r.lo, r.hi, sliderWidth) + "  " + helpStyle.Render("p: "+presetList(r.presets))
		}
		return cursor + r.label + ": " + strconv.FormatInt(v.Int(), 10)
	default:
		return cursor + r.label + ": " + fitText(orDash(v.String()), textPreview)
	}
}

// window returns the range of rows that fits the terminal around the cursor.
func (m panelScreen[M, S]) window() (int, int) {
	visible := m.height - reservedLines
	if m.height == 0 || visible >= len(m.rows) {
		return 0, len(m.rows)
	}
	visible = max(visible, 5)
	from := min(max(m.cursor-visible/2, 0), len(m.rows)-visible)
	return from, from + visible
}

func (m panelScreen[M, S]) hotKeys() string {
	if m.editing {
		if m.rows[m.cursor].multiline {
			return "ctrl+s: aplicar  esc: cancelar"
		}
		return "enter: aplicar  esc: cancelar"
	}
	return "↑/↓: mover  espacio: alternar  ←/→: ajustar  enter: editar  s: guardar  r: recargar  c: copiar  x: restablecer  tab: pantalla  v: versión  q: salir"
}

func (r row) clamp(v int) int {
	return min(max(v, r.lo), r.hi)
}

// nextPreset returns the first preset above current, wrapping around.
func (r row) nextPreset(current int) int {
	for _, p := range r.presets {
		if p > current {
			return p
		}
	}
	return r.presets[0]
}

func presetList(presets []int) string {
	parts := make([]string, len(presets))
	for i, p := range presets {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, " · ")
}
