package service

import "strings"

type credentialStrategy struct {
	local  Backend
	remote Backend
	creds  CredentialSource
}

// NewStorageStrategy returns the strategy that picks remote when creds holds
// a token and local otherwise. It never writes to both.
func NewStorageStrategy(local, remote Backend, creds CredentialSource) StorageStrategy {
	return &credentialStrategy{local: local, remote: remote, creds: creds}
}

func (s *credentialStrategy) Select() Backend {
	if strings.TrimSpace(s.creds.Token()) != "" {
		return s.remote
	}
	return s.local
}
