// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-dag-signer/internal/fields"
	"github.com/MKhiriev/go-dag-signer/internal/service"
	"github.com/MKhiriev/go-dag-signer/models"
)

const (
	titleCopied  = "Copied"
	bodyCopied   = "Signed result copied to clipboard."
	titleError   = "Error"
	bodyNoResult = "Nothing to copy yet."
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type fieldInput struct {
	name  textinput.Model
	value textinput.Model
}

type dropdownState struct {
	open  bool
	row   int
	idx   int
	items []string
}

type model struct {
	ctx       context.Context
	services  *service.ClientServices
	fields    *fields.List
	notifier  service.Notifier
	buildInfo models.AppBuildInfo

	inputs   []fieldInput
	focus    int
	dropdown dropdownState
	spinner  spinner.Model

	// pending counts provider commands that have not settled yet.
	pending       int
	showBuildInfo bool
}

func newModel(
	ctx context.Context,
	services *service.ClientServices,
	list *fields.List,
	notifier service.Notifier,
	buildInfo models.AppBuildInfo,
) model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := model{
		ctx:       ctx,
		services:  services,
		fields:    list,
		notifier:  notifier,
		buildInfo: buildInfo,
		spinner:   s,
	}
	m.syncInputs()
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.buildInfo) || key.Matches(msg, keys.esc) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.dropdown.open {
			return m.updateDropdown(msg)
		}
		return m.updateForm(msg)

	case walletSettledMsg, signingSettledMsg:
		if m.pending > 0 {
			m.pending--
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.notifier.Show(titleError, "Failed to copy: "+msg.err.Error(), models.NotificationError)
			return m, nil
		}
		m.notifier.Show(titleCopied, bodyCopied, models.NotificationSuccess)
		return m, nil

	case notificationChangedMsg:
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil

	case key.Matches(msg, keys.tab):
		return m, m.moveFocus(1)

	case key.Matches(msg, keys.backtab):
		return m, m.moveFocus(-1)

	case key.Matches(msg, keys.addField):
		m.fields.Add()
		m.syncInputs()
		m.focus = 2 * (len(m.inputs) - 1)
		return m, m.applyFocus()

	case key.Matches(msg, keys.removeField):
		if len(m.inputs) == 0 {
			return m, nil
		}
		m.fields.RemoveAt(m.focusedRow())
		m.syncInputs()
		return m, m.applyFocus()

	case key.Matches(msg, keys.dropdown):
		items := m.fields.Predefined()
		if len(items) == 0 || len(m.inputs) == 0 {
			return m, nil
		}
		m.dropdown = dropdownState{open: true, row: m.focusedRow(), items: items}
		return m, nil

	case key.Matches(msg, keys.connect):
		if !m.canConnect() {
			return m, nil
		}
		m.pending++
		return m, tea.Batch(m.cmdConnect(), m.spinner.Tick)

	case key.Matches(msg, keys.disconnect):
		if !m.canDisconnect() {
			return m, nil
		}
		m.services.Session.Disconnect()
		return m, nil

	case key.Matches(msg, keys.submit):
		if !m.canSubmit() {
			return m, nil
		}
		m.pending++
		return m, tea.Batch(m.cmdSubmit(), m.spinner.Tick)

	case key.Matches(msg, keys.copy):
		return m, m.cmdCopyResult()
	}

	if len(m.inputs) == 0 {
		return m, nil
	}

	row, fieldKey := m.focusedRow(), m.focusedKey()
	input := m.focusedInput()

	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	m.fields.SetField(row, fieldKey, input.Value())
	return m, cmd
}

func (m model) updateDropdown(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.dropdown = dropdownState{}

	case key.Matches(msg, keys.up):
		if m.dropdown.idx > 0 {
			m.dropdown.idx--
		}

	case key.Matches(msg, keys.down):
		if m.dropdown.idx < len(m.dropdown.items)-1 {
			m.dropdown.idx++
		}

	case key.Matches(msg, keys.enter):
		m.fields.SelectPredefined(m.dropdown.row, m.dropdown.items[m.dropdown.idx])
		m.dropdown = dropdownState{}
		m.syncInputs()
		return m, m.applyFocus()
	}

	return m, nil
}

// ── Commands ──

func (m model) cmdConnect() tea.Cmd {
	ctx, session := m.ctx, m.services.Session
	return func() tea.Msg {
		session.Connect(ctx)
		return walletSettledMsg{}
	}
}

func (m model) cmdSubmit() tea.Cmd {
	ctx, signing := m.ctx, m.services.Signing
	return func() tea.Msg {
		signing.Submit(ctx)
		return signingSettledMsg{}
	}
}

func (m model) cmdCopyResult() tea.Cmd {
	result, ok := m.services.Signing.Result()
	if !ok {
		m.notifier.Show(titleError, bodyNoResult, models.NotificationError)
		return nil
	}
	text, err := result.FormatJSON()
	if err != nil {
		return func() tea.Msg { return copiedMsg{err: err} }
	}
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}

// ── Control state ──

func (m model) busy() bool {
	return m.pending > 0 || m.services.Signing.Loading()
}

func (m model) canConnect() bool {
	return !m.busy() && m.services.Session.State().Status == models.StatusDisconnected
}

func (m model) canDisconnect() bool {
	return !m.busy() && m.services.Session.State().Status != models.StatusDisconnected
}

func (m model) canSubmit() bool {
	return !m.busy()
}

// ── Focus and inputs ──

// syncInputs rebuilds the text inputs from the field list.
func (m *model) syncInputs() {
	entries := m.fields.Entries()
	m.inputs = make([]fieldInput, len(entries))
	for i, e := range entries {
		m.inputs[i] = fieldInput{
			name:  newTextInput("field name", e.FieldName),
			value: newTextInput("value", e.FieldValue),
		}
	}

	if n := 2 * len(m.inputs); m.focus >= n {
		m.focus = max(n-1, 0)
	}
	m.applyFocus()
}

func newTextInput(placeholder, value string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.Width = 24
	ti.SetValue(value)
	return ti
}

func (m *model) moveFocus(delta int) tea.Cmd {
	n := 2 * len(m.inputs)
	if n == 0 {
		return nil
	}
	m.focus = ((m.focus+delta)%n + n) % n
	return m.applyFocus()
}

func (m *model) applyFocus() tea.Cmd {
	var cmd tea.Cmd
	for i := range m.inputs {
		for k, in := range []*textinput.Model{&m.inputs[i].name, &m.inputs[i].value} {
			if 2*i+k == m.focus {
				cmd = in.Focus()
			} else {
				in.Blur()
			}
		}
	}
	return cmd
}

func (m model) focusedRow() int {
	return m.focus / 2
}

func (m model) focusedKey() models.FieldKey {
	if m.focus%2 == 0 {
		return models.FieldKeyName
	}
	return models.FieldKeyValue
}

func (m *model) focusedInput() *textinput.Model {
	row := &m.inputs[m.focusedRow()]
	if m.focusedKey() == models.FieldKeyName {
		return &row.name
	}
	return &row.value
}
