/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

import (
	"fmt"

	"github.com/go-openapi/strfmt"

	"github.com/suparena/relstore/errors"
)

// Entity type names
const (
	HostType      = "Host"
	GroupType     = "Group"
	SshConfigType = "SshConfig"
	IdentityType  = "Identity"
	SshKeyType    = "SshKey"
	TagType       = "Tag"
	TagHostType   = "TagHost"
)

// Catalogue returns a constructor for every entity type in this package.
func Catalogue() map[string]func() Model {
	return map[string]func() Model{
		HostType:      func() Model { return &Host{} },
		GroupType:     func() Model { return &Group{} },
		SshConfigType: func() Model { return &SshConfig{} },
		IdentityType:  func() Model { return &Identity{} },
		SshKeyType:    func() Model { return &SshKey{} },
		TagType:       func() Model { return &Tag{} },
		TagHostType:   func() Model { return &TagHost{} },
	}
}

// SshKey is a key pair referenced by identities.
type SshKey struct {
	Base
	Label      string `json:"label"`
	PrivateKey string `json:"private_key,omitempty"`
	PublicKey  string `json:"public_key,omitempty"`
}

var sshKeyFields = fieldSet(attr("label"), attr("private_key"), attr("public_key"))

func (k *SshKey) TypeName() string                { return SshKeyType }
func (k *SshKey) Fields() map[string]Field        { return sshKeyFields }
func (k *SshKey) Relation(field string) *Relation { return nil }
func (k *SshKey) Copy() Model {
	c := *k
	return &c
}

// Identity holds login credentials and an optional key.
type Identity struct {
	Base
	Label     string   `json:"label"`
	Username  string   `json:"username"`
	Password  string   `json:"password,omitempty"`
	IsVisible bool     `json:"is_visible"`
	SshKey    Relation `json:"ssh_key"`
}

var identityFields = fieldSet(
	attr("label"), attr("username"), attr("password"), attr("is_visible"),
	fk("ssh_key", SshKeyType),
)

func (i *Identity) TypeName() string         { return IdentityType }
func (i *Identity) Fields() map[string]Field { return identityFields }
func (i *Identity) Relation(field string) *Relation {
	if field == "ssh_key" {
		return &i.SshKey
	}
	return nil
}
func (i *Identity) Copy() Model {
	c := *i
	return &c
}

// SshConfig holds connection settings shared by hosts and groups.
type SshConfig struct {
	Base
	Port           int      `json:"port,omitempty"`
	StartupSnippet string   `json:"startup_snippet,omitempty"`
	Identity       Relation `json:"identity"`
}

var sshConfigFields = fieldSet(attr("port"), attr("startup_snippet"), fk("identity", IdentityType))

func (s *SshConfig) TypeName() string         { return SshConfigType }
func (s *SshConfig) Fields() map[string]Field { return sshConfigFields }
func (s *SshConfig) Relation(field string) *Relation {
	if field == "identity" {
		return &s.Identity
	}
	return nil
}
func (s *SshConfig) Copy() Model {
	c := *s
	return &c
}

func (s *SshConfig) Validate() error {
	if s.Port < 0 || s.Port > 65535 {
		return errors.NewValidationError("port", fmt.Sprintf("%d is out of range", s.Port))
	}
	return nil
}

// Group organizes hosts; groups nest through ParentGroup.
type Group struct {
	Base
	Label       string   `json:"label"`
	ParentGroup Relation `json:"parent_group"`
	SshConfig   Relation `json:"ssh_config"`
}

var groupFields = fieldSet(attr("label"), fk("parent_group", GroupType), fk("ssh_config", SshConfigType))

func (g *Group) TypeName() string         { return GroupType }
func (g *Group) Fields() map[string]Field { return groupFields }
func (g *Group) Relation(field string) *Relation {
	switch field {
	case "parent_group":
		return &g.ParentGroup
	case "ssh_config":
		return &g.SshConfig
	}
	return nil
}
func (g *Group) Copy() Model {
	c := *g
	return &c
}

func (g *Group) Validate() error {
	if g.ID != 0 && g.ParentGroup.RefID() == g.ID {
		return errors.NewValidationError("parent_group", "group cannot be its own parent")
	}
	return nil
}

// Host is a remote machine.
type Host struct {
	Base
	Label     string   `json:"label"`
	Address   string   `json:"address"`
	Group     Relation `json:"group"`
	SshConfig Relation `json:"ssh_config"`
}

var hostFields = fieldSet(attr("label"), attr("address"), fk("group", GroupType), fk("ssh_config", SshConfigType))

func (h *Host) TypeName() string         { return HostType }
func (h *Host) Fields() map[string]Field { return hostFields }
func (h *Host) Relation(field string) *Relation {
	switch field {
	case "group":
		return &h.Group
	case "ssh_config":
		return &h.SshConfig
	}
	return nil
}
func (h *Host) Copy() Model {
	c := *h
	return &c
}

// Validate accepts a hostname or an IPv4/IPv6 address.
func (h *Host) Validate() error {
	if h.Address == "" {
		return errors.NewValidationError("address", "required")
	}
	for _, format := range []string{"hostname", "ipv4", "ipv6"} {
		if strfmt.Default.Validates(format, h.Address) {
			return nil
		}
	}
	return errors.NewValidationError("address", fmt.Sprintf("%q is neither a hostname nor an IP address", h.Address))
}

// Tag is a free-form label attached to hosts through TagHost.
type Tag struct {
	Base
	Label string `json:"label"`
}

var tagFields = fieldSet(attr("label"))

func (t *Tag) TypeName() string                { return TagType }
func (t *Tag) Fields() map[string]Field        { return tagFields }
func (t *Tag) Relation(field string) *Relation { return nil }
func (t *Tag) Copy() Model {
	c := *t
	return &c
}

// TagHost links a tag to a host.
type TagHost struct {
	Base
	Tag  Relation `json:"tag"`
	Host Relation `json:"host"`
}

var tagHostFields = fieldSet(fk("tag", TagType), fk("host", HostType))

func (t *TagHost) TypeName() string         { return TagHostType }
func (t *TagHost) Fields() map[string]Field { return tagHostFields }
func (t *TagHost) Relation(field string) *Relation {
	switch field {
	case "tag":
		return &t.Tag
	case "host":
		return &t.Host
	}
	return nil
}
func (t *TagHost) Copy() Model {
	c := *t
	return &c
}
