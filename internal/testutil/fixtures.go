package testutil

import (
	"time"

	"github.com/meanval/meanval/internal/domain"
)

// Client options
type ClientOption func(*domain.Client)

func WithClientStatus(s domain.ClientStatus) ClientOption {
	return func(c *domain.Client) {
		c.Status = s
	}
}

func WithCompany(name string) ClientOption {
	return func(c *domain.Client) {
		c.Company = name
	}
}

func NewTestClient(name string, opts ...ClientOption) domain.Client {
	c := domain.Client{
		Name:    name,
		Email:   "test@example.com",
		Phone:   "+90 555 000 0000",
		Company: name + " Ltd.",
		Status:  domain.ClientActive,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Project options
type ProjectOption func(*domain.Project)

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithClientID(id string) ProjectOption {
	return func(p *domain.Project) {
		p.ClientID = id
	}
}

func WithBudget(b float64) ProjectOption {
	return func(p *domain.Project) {
		p.Budget = b
	}
}

func WithTasks(tasks ...domain.Task) ProjectOption {
	return func(p *domain.Project) {
		p.Tasks = tasks
	}
}

func NewTestProject(name string, opts ...ProjectOption) domain.Project {
	now := time.Now().UTC()
	p := domain.Project{
		Name:      name,
		Status:    domain.ProjectPlanning,
		StartDate: now.AddDate(0, -1, 0),
		EndDate:   now.AddDate(0, 2, 0),
		Budget:    100000,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Proposal options
type ProposalOption func(*domain.Proposal)

func WithProposalStatus(s domain.ProposalStatus) ProposalOption {
	return func(p *domain.Proposal) {
		p.Status = s
	}
}

func WithItems(items ...domain.ProposalItem) ProposalOption {
	return func(p *domain.Proposal) {
		p.Items = items
	}
}

func WithAmount(a float64) ProposalOption {
	return func(p *domain.Proposal) {
		p.Amount = a
	}
}

func NewTestProposal(projectName string, opts ...ProposalOption) domain.Proposal {
	p := domain.Proposal{
		ProjectName: projectName,
		Amount:      50000,
		Status:      domain.ProposalDraft,
		ValidUntil:  time.Now().UTC().AddDate(0, 1, 0),
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Contract options
type ContractOption func(*domain.Contract)

func WithContractStatus(s domain.ContractStatus) ContractOption {
	return func(c *domain.Contract) {
		c.Status = s
	}
}

func NewTestContract(projectName string, opts ...ContractOption) domain.Contract {
	c := domain.Contract{
		ProjectName: projectName,
		Status:      domain.ContractDraft,
		Content:     "standard terms",
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Showcase options
type ShowcaseOption func(*domain.Showcase)

func WithShowcaseItems(items ...domain.ShowcaseItem) ShowcaseOption {
	return func(s *domain.Showcase) {
		s.Items = items
	}
}

func WithDiscount(d float64) ShowcaseOption {
	return func(s *domain.Showcase) {
		s.Discount = d
	}
}

func NewTestShowcase(projectID, title string, opts ...ShowcaseOption) domain.Showcase {
	s := domain.Showcase{
		ProjectID: projectID,
		Title:     title,
		Status:    domain.ShowcaseDraft,
		Items: []domain.ShowcaseItem{
			{Name: "Design", Quantity: 1, UnitPrice: 30000, Category: domain.CategoryService},
			{Name: "Development", Quantity: 2, UnitPrice: 35000, Category: domain.CategoryFeature},
		},
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
