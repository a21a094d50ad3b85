package service

import "errors"

var (
	ErrWebsiteNameIsNotSpecified = errors.New("website name is not specified")
	ErrNoStorages                = errors.New("no storages provided")
)
