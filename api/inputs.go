package api

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/shaping"
)

// recordInput is a decoded admin request body that writes itself onto a
// stored record. Create and update share the same body and rules.
type recordInput[T any] interface {
	apply(record *T) error
}

const dateMessage = "Must be a date in YYYY-MM-DD format"

func requiredDate(field, value string) (shaping.Date, error) {
	d, err := shaping.ParseDate(value)
	if err != nil {
		return shaping.Date{}, invalidField(field, dateMessage)
	}
	return d, nil
}

func optionalDate(field, value string) (*shaping.Date, error) {
	d, err := shaping.OptionalDate(value)
	if err != nil {
		return nil, invalidField(field, dateMessage)
	}
	return d, nil
}

type activityInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Location    string `json:"location"`
	Image       string `json:"image"`
}

func (in activityInput) apply(a *models.Activity) error {
	date, err := requiredDate("date", in.Date)
	if err != nil {
		return err
	}
	a.Title = in.Title
	a.Description = in.Description
	a.Date = date
	a.Location = shaping.OptionalString(in.Location)
	a.Image = shaping.OptionalString(in.Image)
	return nil
}

type educationInput struct {
	Institution string `json:"institution" validate:"required"`
	Degree      string `json:"degree" validate:"required"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate" validate:"required"`
	EndDate     string `json:"endDate"`
	GPA         string `json:"gpa"`
	Description string `json:"description"`
}

func (in educationInput) apply(e *models.Education) error {
	start, err := requiredDate("startDate", in.StartDate)
	if err != nil {
		return err
	}
	end, err := optionalDate("endDate", in.EndDate)
	if err != nil {
		return err
	}
	e.Institution = in.Institution
	e.Degree = in.Degree
	e.Field = shaping.OptionalString(in.Field)
	e.StartDate = start
	e.EndDate = end
	e.GPA = shaping.OptionalString(in.GPA)
	e.Description = shaping.OptionalString(in.Description)
	return nil
}

type experienceInput struct {
	Company     string   `json:"company" validate:"required"`
	Position    string   `json:"position" validate:"required"`
	Location    string   `json:"location"`
	StartDate   string   `json:"startDate" validate:"required"`
	EndDate     string   `json:"endDate"`
	Current     bool     `json:"current"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

func (in experienceInput) apply(e *models.Experience) error {
	start, err := requiredDate("startDate", in.StartDate)
	if err != nil {
		return err
	}
	end, err := shaping.TenureEnd(in.Current, in.EndDate)
	if err != nil {
		return invalidField("endDate", dateMessage)
	}
	e.Company = in.Company
	e.Position = in.Position
	e.Location = shaping.OptionalString(in.Location)
	e.StartDate = start
	e.EndDate = end
	e.Current = in.Current
	e.Description = shaping.OptionalString(in.Description)
	e.Skills = shaping.List(in.Skills)
	return nil
}

type organizationInput struct {
	Name        string `json:"name" validate:"required"`
	Position    string `json:"position" validate:"required"`
	StartDate   string `json:"startDate" validate:"required"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

func (in organizationInput) apply(o *models.Organization) error {
	start, err := requiredDate("startDate", in.StartDate)
	if err != nil {
		return err
	}
	end, err := shaping.TenureEnd(in.Current, in.EndDate)
	if err != nil {
		return invalidField("endDate", dateMessage)
	}
	o.Name = in.Name
	o.Position = in.Position
	o.StartDate = start
	o.EndDate = end
	o.Current = in.Current
	o.Description = shaping.OptionalString(in.Description)
	return nil
}

type projectInput struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	GithubURL    string   `json:"githubUrl" validate:"omitempty,url"`
	LiveURL      string   `json:"liveUrl" validate:"omitempty,url"`
	Category     string   `json:"category"`
	Featured     bool     `json:"featured"`
}

func (in projectInput) apply(p *models.Project) error {
	p.Title = in.Title
	p.Description = shaping.OptionalString(in.Description)
	p.Image = shaping.OptionalString(in.Image)
	p.Technologies = shaping.List(in.Technologies)
	p.GithubURL = shaping.OptionalString(in.GithubURL)
	p.LiveURL = shaping.OptionalString(in.LiveURL)
	p.Category = shaping.OptionalString(in.Category)
	p.Featured = in.Featured
	return nil
}

type skillInput struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required"`
	Level    int    `json:"level" validate:"required,min=1,max=5"`
	Icon     string `json:"icon"`
}

func (in skillInput) apply(s *models.Skill) error {
	s.Name = in.Name
	s.Category = in.Category
	s.Level = in.Level
	s.Icon = shaping.OptionalString(in.Icon)
	return nil
}

type articleInput struct {
	Title     string   `json:"title" validate:"required"`
	Slug      string   `json:"slug"`
	Content   string   `json:"content" validate:"required"`
	Excerpt   string   `json:"excerpt"`
	Image     string   `json:"image"`
	Published bool     `json:"published"`
	Tags      []string `json:"tags"`
}

// apply derives the slug from the title when none is given.
func (in articleInput) apply(a *models.Article) error {
	slug := strings.TrimSpace(in.Slug)
	if slug == "" {
		slug = shaping.Slugify(in.Title)
	}
	if slug == "" {
		return invalidField("slug", "Slug could not be derived from the title")
	}
	a.Title = in.Title
	a.Slug = slug
	a.Content = in.Content
	a.Excerpt = shaping.OptionalString(in.Excerpt)
	a.Image = shaping.OptionalString(in.Image)
	a.Published = in.Published
	a.Tags = shaping.List(in.Tags)
	return nil
}

type socialMediaInput struct {
	Platform string `json:"platform" validate:"required"`
	Username string `json:"username" validate:"required"`
	URL      string `json:"url" validate:"required,url"`
	Icon     string `json:"icon"`
	Order    int    `json:"order"`
	Active   *bool  `json:"active"`
}

func (in socialMediaInput) apply(s *models.SocialMedia) error {
	s.Platform = in.Platform
	s.Username = in.Username
	s.URL = in.URL
	s.Icon = shaping.OptionalString(in.Icon)
	s.Order = in.Order
	s.Active = in.Active == nil || *in.Active
	return nil
}

type serviceInput struct {
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Unit        string           `json:"unit" validate:"omitempty,oneof=hour day project"`
	Features    []string         `json:"features"`
	Active      *bool            `json:"active"`
}

func (in serviceInput) apply(s *models.Service) error {
	if in.Price.IsNegative() {
		return invalidField("price", "Price must be positive")
	}
	s.Name = in.Name
	s.Description = shaping.OptionalString(in.Description)
	s.Price = in.Price.Round(2)
	s.Unit = in.Unit
	if s.Unit == "" {
		s.Unit = models.DefaultServiceUnit
	}
	s.Features = shaping.List(in.Features)
	s.Active = in.Active == nil || *in.Active
	return nil
}

type profileInput struct {
	Name        string `json:"name" validate:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	Website     string `json:"website" validate:"omitempty,url"`
	Photo       string `json:"photo"`
	Resume      string `json:"resume"`
}

func (in profileInput) apply(p *models.Profile) error {
	p.Name = in.Name
	p.Title = shaping.OptionalString(in.Title)
	p.Description = shaping.OptionalString(in.Description)
	p.Email = shaping.OptionalString(in.Email)
	p.Phone = shaping.OptionalString(in.Phone)
	p.Location = shaping.OptionalString(in.Location)
	p.Website = shaping.OptionalString(in.Website)
	p.Photo = shaping.OptionalString(in.Photo)
	p.Resume = shaping.OptionalString(in.Resume)
	return nil
}

// contactInput is the public contact form.
type contactInput struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,min=10,max=2000"`
}

// contact builds the stored row. Phone has no column of its own, so it is
// kept at the top of the message.
func (in contactInput) contact() *models.Contact {
	message := in.Message
	if phone := strings.TrimSpace(in.Phone); phone != "" {
		message = "Phone: " + phone + "\n\n" + message
	}
	return &models.Contact{
		Name:    in.Name,
		Email:   in.Email,
		Subject: shaping.OptionalString(in.Subject),
		Message: message,
		Read:    false,
	}
}
