package web

import (
	"github.com/dwellist/dwellist-backend/internal/models"
	"github.com/dwellist/dwellist-backend/internal/payment"
)

// View models passed to the templates. Handlers fill these explicitly; the
// templates never reach into repositories or services.

// ErrorView backs the generic error page.
type ErrorView struct {
	Error string
}

// HomeView backs the public landing page.
type HomeView struct {
	Properties []models.PropertyListItem
	Error      string
	Success    string
}

// LoginView backs the login pages.
type LoginView struct {
	Error string
}

// DashboardView backs the tenant and landlord dashboard pages.
type DashboardView struct {
	Name    string
	Role    string
	Error   string
	Success string
}

// ProfileView backs the profile page for both roles.
type ProfileView struct {
	Name    string
	Email   string
	Role    string
	Error   string
	Success string
}

// MailboxView backs the mailbox listing page.
type MailboxView struct {
	UserID   uint
	Role     string
	Messages []models.MailboxListItem
}

// ComposeView backs the compose page. Contacts are the counterpart users the
// sender is linked to, offered as recipient suggestions.
type ComposeView struct {
	Role     string
	Contacts []models.User
	CanAll   bool
	Error    string
	Success  string
}

// PropertiesView backs the landlord property management page.
type PropertiesView struct {
	Properties []models.Property
	Error      string
	Success    string
}

// ApplicationsView backs the application listing pages.
type ApplicationsView struct {
	Role         string
	Applications []models.ApplicationListItem
	Error        string
	Success      string
}

// RentalApplicationView backs the public rental application form.
type RentalApplicationView struct {
	Properties []models.PropertyListItem
	Error      string
	Success    string
}

// PayRentView backs the tenant rent payment page.
type PayRentView struct {
	Landlords []models.User
	History   []payment.Transaction
	Error     string
	Success   string
}
