package ui

import "context"

// quietPresenter drives the sequence but produces no output.
type quietPresenter struct{}

func (p *quietPresenter) HandleEvent(_ Event) {}

func (p *quietPresenter) Run(ctx context.Context, s Session) error {
	return drive(ctx, s, 0, nil)
}

func (p *quietPresenter) Summary() string {
	return ""
}
