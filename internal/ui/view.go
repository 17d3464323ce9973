package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/prashant-tajane/qkart-frontend/internal/usecase"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	switch m.mode {
	case RegisterView:
		b.WriteString(m.viewForm("Register", true))
	case LoginView:
		b.WriteString(m.viewForm("Login", false))
	default:
		b.WriteString(m.viewProducts())
	}

	if m.toast != "" {
		b.WriteString("\n")
		b.WriteString(m.toastStyle().Render(m.toast))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.helpLine()))
	return b.String()
}

func (m Model) viewHeader() string {
	sess := m.deps.Session.Current()
	who := "guest"
	if sess.LoggedIn() {
		who = sess.Username
	}
	return m.styles.Header.Render("QKart") + " " + m.styles.HeaderUser.Render(who)
}

func (m Model) viewProducts() string {
	var left strings.Builder
	left.WriteString(m.searchInput.View())
	left.WriteString("\n\n")

	visible := m.catalog.Visible()
	switch {
	case m.loading:
		left.WriteString(m.spin.View() + " Loading products…")
	case len(visible) == 0:
		left.WriteString(m.styles.Empty.Render("No products found"))
	default:
		for i, p := range visible {
			cursor := "  "
			name := m.styles.ProductName.Render(p.Name)
			if i == m.cursor && m.focus == FocusProducts {
				cursor = m.styles.Cursor.Render("› ")
			}
			meta := m.styles.ProductMeta.Render(fmt.Sprintf("%s · %s · %s", p.Category, formatCost(p.Cost), stars(p.Rating)))
			left.WriteString(cursor + name + "  " + meta + "\n")
		}
	}

	productsPane := m.pane(m.focus == FocusProducts || m.focus == FocusSearch).Render(left.String())
	if !m.deps.Session.Current().LoggedIn() {
		return productsPane
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, productsPane, m.viewCart())
}

func (m Model) viewCart() string {
	var b strings.Builder
	b.WriteString(m.styles.PaneTitle.Render("Cart"))
	b.WriteString("\n")

	if len(m.items) == 0 {
		b.WriteString(m.styles.Empty.Render("Cart is empty. Add more items to the cart to checkout."))
	} else {
		for i, item := range m.items {
			cursor := "  "
			if i == m.cartCursor && m.focus == FocusCart {
				cursor = m.styles.Cursor.Render("› ")
			}
			b.WriteString(fmt.Sprintf("%s%s  ×%d  %s\n",
				cursor, item.Product.Name, item.Qty, formatCost(float64(item.Qty)*item.Product.Cost)))
		}
		b.WriteString("\n")
		b.WriteString(m.styles.CartTotal.Render("Order total: " + formatCost(usecase.CartTotal(m.items))))
	}

	return m.pane(m.focus == FocusCart).Render(b.String())
}

func (m Model) viewForm(title string, register bool) string {
	var b strings.Builder
	b.WriteString(m.styles.PaneTitle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.styles.FormLabel.Render("Username") + "\n" + m.usernameInput.View() + "\n")
	b.WriteString(m.styles.FormLabel.Render("Password") + "\n" + m.passwordInput.View() + "\n")
	if register {
		b.WriteString(m.styles.FormLabel.Render("Confirm password") + "\n" + m.confirmInput.View() + "\n")
	}
	if m.formBusy {
		b.WriteString("\n" + m.spin.View() + " Submitting…")
	}
	return m.pane(true).Render(b.String())
}

func (m Model) pane(focused bool) lipgloss.Style {
	if focused {
		return m.styles.PaneFocused
	}
	return m.styles.Pane
}

func (m Model) toastStyle() lipgloss.Style {
	switch m.toastKind {
	case toastKindError:
		return m.styles.ToastError
	case toastKindSuccess:
		return m.styles.ToastSuccess
	default:
		return m.styles.ToastInfo
	}
}

func (m Model) helpLine() string {
	switch m.mode {
	case RegisterView, LoginView:
		return "tab: next field · enter: submit · esc: back · ctrl+c: quit"
	}
	if m.deps.Session.Current().LoggedIn() {
		return "tab: switch pane · enter: add to cart · +/-: change qty · ctrl+o: logout · ctrl+c: quit"
	}
	return "tab: switch pane · enter: add to cart · ctrl+r: register · ctrl+l: login · ctrl+c: quit"
}

func formatCost(cost float64) string {
	return "$" + strconv.FormatFloat(cost, 'f', -1, 64)
}

func stars(rating int) string {
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
