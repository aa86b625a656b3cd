package fixtures

import (
	"time"

	"github.com/dwellist/dwellist-backend/internal/models"
)

// UserBuilder creates test User instances with fluent API
type UserBuilder struct {
	user models.User
}

// NewUserBuilder creates a new UserBuilder with sensible defaults. The ID is
// left zero so built users can be inserted as well as used in-memory.
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		user: models.User{
			Name:  "Casey Tenant",
			Email: "casey@example.com",
			Role:  models.RoleTenant,
		},
	}
}

// WithID sets the user ID
func (b *UserBuilder) WithID(id uint) *UserBuilder {
	b.user.ID = id
	return b
}

// WithName sets the display name
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.user.Name = name
	return b
}

// WithEmail sets the email address
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

// WithRole sets the account role
func (b *UserBuilder) WithRole(role string) *UserBuilder {
	b.user.Role = role
	return b
}

// AsLandlord switches the account to the landlord role with landlord defaults
func (b *UserBuilder) AsLandlord() *UserBuilder {
	b.user.Role = models.RoleLandlord
	if b.user.Name == "Casey Tenant" {
		b.user.Name = "Lena Landlord"
		b.user.Email = "lena@example.com"
	}
	return b
}

// WithGoogleID sets the external Google account id
func (b *UserBuilder) WithGoogleID(googleID string) *UserBuilder {
	b.user.GoogleID = &googleID
	return b
}

// Build returns the constructed User
func (b *UserBuilder) Build() *models.User {
	user := b.user
	return &user
}

// PropertyBuilder creates test Property instances with fluent API
type PropertyBuilder struct {
	property models.Property
}

// NewPropertyBuilder creates a new PropertyBuilder with sensible defaults
func NewPropertyBuilder() *PropertyBuilder {
	return &PropertyBuilder{
		property: models.Property{
			LandlordID: 1,
			Address:    "1 Main St",
			Price:      1200,
			Bedrooms:   2,
			Bathrooms:  1,
		},
	}
}

// WithID sets the property ID
func (b *PropertyBuilder) WithID(id uint) *PropertyBuilder {
	b.property.ID = id
	return b
}

// WithLandlord sets the owning landlord
func (b *PropertyBuilder) WithLandlord(landlordID uint) *PropertyBuilder {
	b.property.LandlordID = landlordID
	return b
}

// WithAddress sets the street address
func (b *PropertyBuilder) WithAddress(address string) *PropertyBuilder {
	b.property.Address = address
	return b
}

// WithPrice sets the monthly rent
func (b *PropertyBuilder) WithPrice(price float64) *PropertyBuilder {
	b.property.Price = price
	return b
}

// WithRooms sets bedroom and bathroom counts
func (b *PropertyBuilder) WithRooms(bedrooms, bathrooms int) *PropertyBuilder {
	b.property.Bedrooms = bedrooms
	b.property.Bathrooms = bathrooms
	return b
}

// WithImage sets the stored listing photo
func (b *PropertyBuilder) WithImage(path, contentType string) *PropertyBuilder {
	b.property.ImagePath = path
	b.property.ImageContentType = contentType
	return b
}

// Build returns the constructed Property
func (b *PropertyBuilder) Build() *models.Property {
	property := b.property
	return &property
}

// ApplicationBuilder creates test PropertyApplication instances with fluent API
type ApplicationBuilder struct {
	application models.PropertyApplication
}

// NewApplicationBuilder creates a new ApplicationBuilder with sensible defaults
func NewApplicationBuilder() *ApplicationBuilder {
	return &ApplicationBuilder{
		application: models.PropertyApplication{
			PropertyID:    1,
			TenantID:      1,
			ApplicantName: "Casey Tenant",
			ContactEmail:  "casey@example.com",
			ContactPhone:  "555-0101",
			AnnualIncome:  52000,
			Occupation:    "Engineer",
			MoveInDate:    "2026-10-01",
			Status:        models.ApplicationPending,
		},
	}
}

// WithID sets the application ID
func (b *ApplicationBuilder) WithID(id uint) *ApplicationBuilder {
	b.application.ID = id
	return b
}

// ForProperty sets the target property
func (b *ApplicationBuilder) ForProperty(propertyID uint) *ApplicationBuilder {
	b.application.PropertyID = propertyID
	return b
}

// ByTenant sets the applying tenant
func (b *ApplicationBuilder) ByTenant(tenantID uint) *ApplicationBuilder {
	b.application.TenantID = tenantID
	return b
}

// WithApplicant sets the applicant name and contact email
func (b *ApplicationBuilder) WithApplicant(name, email string) *ApplicationBuilder {
	b.application.ApplicantName = name
	b.application.ContactEmail = email
	return b
}

// WithIncome sets the declared annual income
func (b *ApplicationBuilder) WithIncome(income float64) *ApplicationBuilder {
	b.application.AnnualIncome = income
	return b
}

// WithStatus sets the review status
func (b *ApplicationBuilder) WithStatus(status string) *ApplicationBuilder {
	b.application.Status = status
	return b
}

// Build returns the constructed PropertyApplication
func (b *ApplicationBuilder) Build() *models.PropertyApplication {
	application := b.application
	return &application
}

// MessageBuilder creates test MailboxMessage instances with fluent API
type MessageBuilder struct {
	message models.MailboxMessage
}

// NewMessageBuilder creates a new MessageBuilder with sensible defaults
func NewMessageBuilder() *MessageBuilder {
	return &MessageBuilder{
		message: models.MailboxMessage{
			SenderID:       1,
			ReceiverID:     2,
			Subject:        "Leaky tap",
			MessageContent: "The kitchen tap drips.",
		},
	}
}

// From sets the sender
func (b *MessageBuilder) From(senderID uint) *MessageBuilder {
	b.message.SenderID = senderID
	return b
}

// To sets the receiver
func (b *MessageBuilder) To(receiverID uint) *MessageBuilder {
	b.message.ReceiverID = receiverID
	return b
}

// WithSubject sets the subject line
func (b *MessageBuilder) WithSubject(subject string) *MessageBuilder {
	b.message.Subject = subject
	return b
}

// WithContent sets the message body
func (b *MessageBuilder) WithContent(content string) *MessageBuilder {
	b.message.MessageContent = content
	return b
}

// WithSentAt sets the sent timestamp
func (b *MessageBuilder) WithSentAt(t time.Time) *MessageBuilder {
	b.message.SentAt = t
	return b
}

// Build returns the constructed MailboxMessage
func (b *MessageBuilder) Build() *models.MailboxMessage {
	message := b.message
	return &message
}

// ListItemFor projects a stored message into the mailbox list shape using the
// given party details, mirroring what the repository join produces.
func ListItemFor(message *models.MailboxMessage, sender, receiver *models.User) models.MailboxListItem {
	return models.MailboxListItem{
		ID:             message.ID,
		SenderID:       sender.ID,
		ReceiverID:     receiver.ID,
		SenderName:     sender.Name,
		SenderEmail:    sender.Email,
		ReceiverName:   receiver.Name,
		ReceiverEmail:  receiver.Email,
		Subject:        message.Subject,
		MessageContent: message.MessageContent,
		SentAt:         message.SentAt,
	}
}
