package services

import (
	"github.com/slicycode/file-drive/repositories"
	"github.com/slicycode/file-drive/storage"
)

type Container struct {
	Principal PrincipalService
	Access    AccessService
	User      UserService
	File      FileService
	Favorite  FavoriteService
	Sweeper   SweeperService
}

func NewContainer(repos repositories.Container, blobs storage.BlobStore) *Container {
	principal := NewPrincipalService(repos.Users, repos.PrincipalCache)
	access := NewAccessService(principal, repos.Files)

	return &Container{
		Principal: principal,
		Access:    access,
		User:      NewUserService(repos.TxManager, principal, repos.Users, repos.PrincipalCache),
		File:      NewFileService(repos.TxManager, principal, access, repos.Files, repos.Favorites, blobs),
		Favorite:  NewFavoriteService(repos.TxManager, access, repos.Favorites),
		Sweeper:   NewSweeperService(repos.TxManager, repos.Files, repos.Favorites, blobs),
	}
}
