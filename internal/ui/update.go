package ui

import (
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/prashant-tajane/qkart-frontend/internal/domain"
	"github.com/prashant-tajane/qkart-frontend/internal/usecase"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading && !m.formBusy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case searchFiredMsg:
		m.loading = true
		return m, tea.Batch(m.fetchCatalog(msg.query), m.waitForQuery(), m.spin.Tick)

	case catalogMsg:
		return m.onCatalog(msg)

	case cartFetchedMsg:
		return m.onCartFetched(msg)

	case cartUpdatedMsg:
		return m.onCartUpdated(msg)

	case registeredMsg:
		return m.onRegistered(msg)

	case loggedInMsg:
		return m.onLoggedIn(msg)

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.onKey(msg)
	}

	return m, nil
}

// ---- async results ----

func (m Model) onCatalog(msg catalogMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.deps.Logger.Error("catalog fetch failed", "query", msg.query, "error", msg.err)
		if msg.query == "" {
			// Losing the full catalog is worth interrupting the user for.
			return m.setToast(toastNetworkError, toastKindError)
		}
		// A failed search (e.g. no matches) renders as an empty result list.
		m.catalog.Apply(msg.query, nil)
		m.cursor = 0
		return m, nil
	}

	m.catalog.Apply(msg.query, msg.products)
	if m.cursor >= len(m.catalog.Visible()) {
		m.cursor = 0
	}
	m.items = m.deps.Cart.Reconcile(m.entries, m.catalog.Master())
	return m, nil
}

func (m Model) onCartFetched(msg cartFetchedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.deps.Logger.Error("cart fetch failed", "error", msg.err)
		return m.setToast(toastCartFetchError, toastKindError)
	}
	m.entries = msg.entries
	m.items = m.deps.Cart.Reconcile(m.entries, m.catalog.Master())
	m.clampCartCursor()
	return m, nil
}

func (m Model) onCartUpdated(msg cartUpdatedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m.setToast(cartErrorText(msg.err), toastKindInfoOrError(msg.err))
	}
	m.entries = msg.entries
	m.items = m.deps.Cart.Reconcile(m.entries, m.catalog.Master())
	m.clampCartCursor()
	return m, nil
}

func (m Model) onRegistered(msg registeredMsg) (tea.Model, tea.Cmd) {
	m.formBusy = false
	if msg.err != nil {
		return m.setToast(authErrorText(msg.err), toastKindError)
	}

	// Fresh accounts land on the login screen with the username carried over.
	m.mode = LoginView
	m.passwordInput.SetValue("")
	m.confirmInput.SetValue("")
	m.setFormFocus(1)
	return m.setToast(toastRegistered, toastKindSuccess)
}

func (m Model) onLoggedIn(msg loggedInMsg) (tea.Model, tea.Cmd) {
	m.formBusy = false
	if msg.err != nil {
		return m.setToast(authErrorText(msg.err), toastKindError)
	}

	if err := m.deps.Session.SignIn(msg.token, msg.username); err != nil {
		m.deps.Logger.Error("persist session failed", "error", err)
	}
	m.mode = ProductsView
	m.focus = FocusSearch
	m.searchInput.Focus()
	m.usernameInput.SetValue("")
	m.passwordInput.SetValue("")

	next, cmd := m.setToast(toastLoggedIn, toastKindSuccess)
	return next, tea.Batch(cmd, next.(Model).fetchCart())
}

// ---- keys ----

func (m Model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.dispatcher.Cancel()
		return m, tea.Quit
	}

	switch m.mode {
	case RegisterView, LoginView:
		return m.onFormKey(msg)
	default:
		return m.onProductsKey(msg)
	}
}

func (m Model) onProductsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.cycleFocus()
		return m, nil
	case "ctrl+r":
		if !m.deps.Session.Current().LoggedIn() {
			m.enterForm(RegisterView)
			return m, textinput.Blink
		}
		return m, nil
	case "ctrl+l":
		if !m.deps.Session.Current().LoggedIn() {
			m.enterForm(LoginView)
			return m, textinput.Blink
		}
		return m, nil
	case "ctrl+o":
		return m.logout()
	}

	switch m.focus {
	case FocusSearch:
		return m.onSearchKey(msg)
	case FocusProducts:
		return m.onProductListKey(msg)
	default:
		return m.onCartKey(msg)
	}
}

func (m Model) onSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() != before {
		m.dispatcher.Input(m.searchInput.Value())
	}
	return m, cmd
}

func (m Model) onProductListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.catalog.Visible()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(visible) {
			return m, m.updateCart(visible[m.cursor].ID, usecase.ModeAdd)
		}
	case "q":
		m.dispatcher.Cancel()
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) onCartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cartCursor > 0 {
			m.cartCursor--
		}
	case "down", "j":
		if m.cartCursor < len(m.items)-1 {
			m.cartCursor++
		}
	case "+", "right", "l":
		if m.cartCursor < len(m.items) {
			return m, m.updateCart(m.items[m.cartCursor].Product.ID, usecase.ModeIncrement)
		}
	case "-", "left", "h":
		if m.cartCursor < len(m.items) {
			return m, m.updateCart(m.items[m.cartCursor].Product.ID, usecase.ModeDecrement)
		}
	case "q":
		m.dispatcher.Cancel()
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) onFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ProductsView
		m.focus = FocusSearch
		m.searchInput.Focus()
		return m, nil
	case "tab", "down":
		m.setFormFocus(m.formFocus + 1)
		return m, textinput.Blink
	case "shift+tab", "up":
		m.setFormFocus(m.formFocus - 1)
		return m, textinput.Blink
	case "enter":
		return m.submitForm()
	}

	var cmd tea.Cmd
	switch m.formFocus {
	case 0:
		m.usernameInput, cmd = m.usernameInput.Update(msg)
	case 1:
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	default:
		m.confirmInput, cmd = m.confirmInput.Update(msg)
	}
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	if m.formBusy {
		return m, nil
	}
	m.formBusy = true

	if m.mode == RegisterView {
		return m, tea.Batch(m.register(usecase.RegisterInput{
			Username:        m.usernameInput.Value(),
			Password:        m.passwordInput.Value(),
			ConfirmPassword: m.confirmInput.Value(),
		}), m.spin.Tick)
	}
	return m, tea.Batch(m.login(usecase.LoginInput{
		Username: m.usernameInput.Value(),
		Password: m.passwordInput.Value(),
	}), m.spin.Tick)
}

func (m Model) logout() (tea.Model, tea.Cmd) {
	if !m.deps.Session.Current().LoggedIn() {
		return m, nil
	}
	if err := m.deps.Session.SignOut(); err != nil {
		m.deps.Logger.Error("sign out failed", "error", err)
	}
	m.entries = nil
	m.items = nil
	m.cartCursor = 0
	if m.focus == FocusCart {
		m.focus = FocusSearch
		m.searchInput.Focus()
	}
	return m, nil
}

// ---- helpers ----

func (m *Model) cycleFocus() {
	m.searchInput.Blur()
	switch m.focus {
	case FocusSearch:
		m.focus = FocusProducts
	case FocusProducts:
		if m.deps.Session.Current().LoggedIn() {
			m.focus = FocusCart
		} else {
			m.focus = FocusSearch
			m.searchInput.Focus()
		}
	default:
		m.focus = FocusSearch
		m.searchInput.Focus()
	}
}

func (m *Model) enterForm(mode ViewMode) {
	m.mode = mode
	m.formBusy = false
	m.usernameInput.SetValue("")
	m.passwordInput.SetValue("")
	m.confirmInput.SetValue("")
	m.setFormFocus(0)
}

func (m *Model) setFormFocus(i int) {
	fields := 2
	if m.mode == RegisterView {
		fields = 3
	}
	if i < 0 {
		i = fields - 1
	}
	m.formFocus = i % fields

	m.usernameInput.Blur()
	m.passwordInput.Blur()
	m.confirmInput.Blur()
	switch m.formFocus {
	case 0:
		m.usernameInput.Focus()
	case 1:
		m.passwordInput.Focus()
	default:
		m.confirmInput.Focus()
	}
}

func (m *Model) clampCartCursor() {
	if m.cartCursor >= len(m.items) {
		m.cartCursor = len(m.items) - 1
	}
	if m.cartCursor < 0 {
		m.cartCursor = 0
	}
}

func (m Model) setToast(text string, kind toastKind) (tea.Model, tea.Cmd) {
	m.toast = text
	m.toastKind = kind
	m.toastSeq++
	return m, m.expireToast(m.toastSeq)
}

// cartErrorText maps a cart mutation failure to its notification text.
func cartErrorText(err error) string {
	switch {
	case errors.Is(err, domain.ErrLoginRequired):
		return toastLoginRequired
	case errors.Is(err, domain.ErrDuplicateItem):
		return toastDuplicateItem
	case errors.Is(err, domain.ErrBackendUnreachable):
		return toastNetworkError
	}
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return toastGenericError
}

func toastKindInfoOrError(err error) toastKind {
	if errors.Is(err, domain.ErrLoginRequired) || errors.Is(err, domain.ErrDuplicateItem) {
		return toastKindInfo
	}
	return toastKindError
}

// authErrorText maps a register/login failure to its notification text.
// Validation messages and 4xx responses surface verbatim.
func authErrorText(err error) string {
	var vErr domain.ValidationError
	if errors.As(err, &vErr) {
		return string(vErr)
	}
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return toastGenericError
}
