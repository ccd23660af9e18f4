package service

import (
	"pressdesk.app/unassigned/core/config"
	"pressdesk.app/unassigned/internal/event"
	"pressdesk.app/unassigned/internal/plagiarism"
	"pressdesk.app/unassigned/internal/store"
)

type Services struct {
	stores     *store.Stores
	txRunner   TxRunner
	dispatcher *event.Dispatcher
	checker    plagiarism.Checker
	workOSCfg  config.WorkOSConfig
}

func NewServices(
	stores *store.Stores,
	txRunner TxRunner,
	dispatcher *event.Dispatcher,
	checker plagiarism.Checker,
	workOSCfg config.WorkOSConfig,
) *Services {
	return &Services{
		stores:     stores,
		txRunner:   txRunner,
		dispatcher: dispatcher,
		checker:    checker,
		workOSCfg:  workOSCfg,
	}
}

func (s *Services) Articles() ArticleService {
	return NewArticleService(s.stores.Articles(), s.stores.Accounts(), s.stores.Assignments(), s.checker)
}

func (s *Services) Assignments() AssignmentService {
	return NewAssignmentService(
		s.stores.Articles(),
		s.stores.Accounts(),
		s.stores.Assignments(),
		s.txRunner,
		s.dispatcher,
	)
}

func (s *Services) Auth() AuthService {
	return NewAuthService(s.stores.Accounts(), s.stores.Sessions(), s.workOSCfg)
}
