package service

import (
	"github.com/kolpakovda/go-journal-client/internal/adapter"
	"github.com/kolpakovda/go-journal-client/internal/config"
	"github.com/kolpakovda/go-journal-client/internal/logger"
	"github.com/kolpakovda/go-journal-client/internal/store"
)

type ClientServices struct {
	AuthService    ClientAuthService
	JournalService ClientJournalService
	FriendService  ClientFriendService
	UserService    ClientUserService
	AdminService   ClientAdminService
	AppInfoService AppInfoService
}

func NewClientServices(cfg config.ClientApp, localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, log *logger.Logger) (*ClientServices, error) {
	appInfoSvc, err := NewAppInfoService(cfg, log)
	if err != nil {
		return nil, err
	}

	return &ClientServices{
		AuthService:    NewClientAuthService(localStore, serverAdapter),
		JournalService: NewClientJournalService(serverAdapter),
		FriendService:  NewClientFriendService(serverAdapter),
		UserService:    NewClientUserService(serverAdapter),
		AdminService:   NewClientAdminService(serverAdapter),
		AppInfoService: appInfoSvc,
	}, nil
}
