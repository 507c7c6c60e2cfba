package infra

import (
	"github.com/secmon-lab/runboard/pkg/domain/interfaces"
)

type Clients struct {
	githubActions    interfaces.GitHubActions
	entityRepository interfaces.EntityRepository
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHubActions() interfaces.GitHubActions {
	return x.githubActions
}
func (x *Clients) EntityRepository() interfaces.EntityRepository {
	return x.entityRepository
}

func WithGitHubActions(client interfaces.GitHubActions) Option {
	return func(x *Clients) {
		x.githubActions = client
	}
}

func WithEntityRepository(repo interfaces.EntityRepository) Option {
	return func(x *Clients) {
		x.entityRepository = repo
	}
}
