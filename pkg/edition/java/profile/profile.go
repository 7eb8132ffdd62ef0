// Package profile holds the Mojang game profile of a tab list entry.
package profile

import (
	"fmt"

	"go.minekube.com/tab/pkg/util/uuid"
)

// GameProfile is a Mojang game profile.
type GameProfile struct {
	ID         uuid.UUID  `json:"id" yaml:"id"`
	Name       string     `json:"name" yaml:"name"`
	Properties []Property `json:"properties,omitempty" yaml:"properties,omitempty"`
}

func (g *GameProfile) String() string {
	return fmt.Sprintf("GameProfile{ID:%s,Name:%s,Properties:%s}",
		g.ID, g.Name, g.Properties)
}

// Property is a Mojang profile property, usually the "textures" skin property.
type Property struct {
	Name      string `json:"name" yaml:"name"`
	Value     string `json:"value" yaml:"value"`
	Signature string `json:"signature,omitempty" yaml:"signature,omitempty"`
}

func (p Property) String() string {
	return fmt.Sprintf("Property{Name:%s,Value:%s,Signature:%s}",
		p.Name, p.Value, p.Signature)
}
