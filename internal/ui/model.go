package ui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/prashant-tajane/qkart-frontend/internal/backend"
	"github.com/prashant-tajane/qkart-frontend/internal/domain"
	"github.com/prashant-tajane/qkart-frontend/internal/search"
	"github.com/prashant-tajane/qkart-frontend/internal/session"
	"github.com/prashant-tajane/qkart-frontend/internal/usecase"
)

// User-facing notification texts. Fixed strings, shown verbatim.
const (
	toastLoginRequired  = "Login to add an item to the Cart"
	toastDuplicateItem  = "Item already in cart. Use the cart sidebar to update quantity or remove item."
	toastNetworkError   = "Error: Network Error"
	toastCartFetchError = "Could not fetch cart details. Check that the backend is running, reachable and returns valid JSON."
	toastGenericError   = "Something went wrong. Check that the backend is running, reachable and returns valid JSON."
	toastRegistered     = "Registered successfully"
	toastLoggedIn       = "Logged in successfully"
)

const toastTTL = 6 * time.Second

// ViewMode selects which screen is rendered.
type ViewMode int

const (
	ProductsView ViewMode = iota
	RegisterView
	LoginView
)

// Focus tracks which pane of the products screen receives keys.
type Focus int

const (
	FocusSearch Focus = iota
	FocusProducts
	FocusCart
)

type toastKind int

const (
	toastKindInfo toastKind = iota
	toastKindError
	toastKindSuccess
)

// Deps are the collaborators the interface drives. All remote work goes
// through them; the model itself never touches the network.
type Deps struct {
	Catalog      backend.CatalogService
	Cart         *usecase.CartUsecase
	Auth         *usecase.AuthUsecase
	Session      *session.Manager
	Logger       *slog.Logger
	SearchWindow time.Duration
}

// Model is the single bubbletea model for the whole client.
type Model struct {
	deps       Deps
	dispatcher *search.Dispatcher
	styles     Styles

	mode  ViewMode
	focus Focus

	searchInput textinput.Model
	spin        spinner.Model

	// Register/login form. The confirm field only renders on the register
	// screen; login reuses the first two.
	usernameInput textinput.Model
	passwordInput textinput.Model
	confirmInput  textinput.Model
	formFocus     int
	formBusy      bool

	catalog    usecase.CatalogState
	entries    []domain.CartEntry
	items      []domain.DisplayCartItem
	cursor     int
	cartCursor int

	loading bool

	toast     string
	toastKind toastKind
	toastSeq  int

	width  int
	height int
}

func New(deps Deps) Model {
	si := textinput.New()
	si.Placeholder = "Search for items/categories"
	si.Prompt = "/ "
	si.Focus()

	ui := textinput.New()
	ui.Placeholder = "Username"

	pi := textinput.New()
	pi.Placeholder = "Password"
	pi.EchoMode = textinput.EchoPassword

	ci := textinput.New()
	ci.Placeholder = "Confirm password"
	ci.EchoMode = textinput.EchoPassword

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		deps:          deps,
		dispatcher:    search.NewDispatcher(deps.SearchWindow),
		styles:        DefaultStyles(),
		searchInput:   si,
		usernameInput: ui,
		passwordInput: pi,
		confirmInput:  ci,
		spin:          sp,
		loading:       true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchCatalog(""),
		m.fetchCart(),
		m.waitForQuery(),
		m.spin.Tick,
		textinput.Blink,
	)
}

// ---- messages ----

type catalogMsg struct {
	query    string
	products []domain.Product
	err      error
}

type cartFetchedMsg struct {
	entries []domain.CartEntry
	err     error
}

type cartUpdatedMsg struct {
	entries []domain.CartEntry
	err     error
}

type registeredMsg struct {
	username string
	err      error
}

type loggedInMsg struct {
	username string
	token    string
	err      error
}

type searchFiredMsg struct {
	query string
}

type toastExpiredMsg struct {
	seq int
}

// ---- commands ----

func (m Model) fetchCatalog(query string) tea.Cmd {
	return func() tea.Msg {
		products, err := m.deps.Catalog.SearchProducts(context.Background(), query)
		return catalogMsg{query: query, products: products, err: err}
	}
}

func (m Model) fetchCart() tea.Cmd {
	sess := m.deps.Session.Current()
	if !sess.LoggedIn() {
		return nil
	}
	return func() tea.Msg {
		entries, err := m.deps.Cart.Fetch(context.Background(), sess.Token)
		return cartFetchedMsg{entries: entries, err: err}
	}
}

func (m Model) updateCart(productID string, mode usecase.CartMode) tea.Cmd {
	in := usecase.AddOrUpdateInput{
		Token:     m.deps.Session.Current().Token,
		Entries:   m.entries,
		ProductID: productID,
		Mode:      mode,
	}
	return func() tea.Msg {
		entries, err := m.deps.Cart.AddOrUpdate(context.Background(), in)
		return cartUpdatedMsg{entries: entries, err: err}
	}
}

func (m Model) register(in usecase.RegisterInput) tea.Cmd {
	return func() tea.Msg {
		return registeredMsg{username: in.Username, err: m.deps.Auth.Register(context.Background(), in)}
	}
}

func (m Model) login(in usecase.LoginInput) tea.Cmd {
	return func() tea.Msg {
		token, err := m.deps.Auth.Login(context.Background(), in)
		return loggedInMsg{username: in.Username, token: token, err: err}
	}
}

// waitForQuery blocks on the debounce dispatcher and must be re-issued after
// every delivery to keep the subscription alive.
func (m Model) waitForQuery() tea.Cmd {
	return func() tea.Msg {
		return searchFiredMsg{query: <-m.dispatcher.Queries()}
	}
}

func (m Model) expireToast(seq int) tea.Cmd {
	return tea.Tick(toastTTL, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}
