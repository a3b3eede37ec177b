package domain

import "time"

// ProfilePage é um perfil de divulgação de um influenciador. Cada perfil
// carrega seu próprio link com UTM para atribuição de vendas.
type ProfilePage struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Platform Platform `json:"platform"`
	URL      string   `json:"url,omitempty"`
	UtmLink  string   `json:"utmLink,omitempty"`
}

// Influencer participa do programa de indicação: vendas atribuídas via UTM
// aos seus perfis geram comissão percentual.
type Influencer struct {
	ID           string        `json:"id"`
	UID          string        `json:"uid"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Percentage   float64       `json:"percentage"`
	ProfilePages []ProfilePage `json:"profilePages"`
	IsActive     bool          `json:"isActive"`
	CreatedAt    time.Time     `json:"createdAt"`
}

type UpdateInfluencerRequest struct {
	ID           string         `json:"id"`
	Name         *string        `json:"name"`
	Email        *string        `json:"email"`
	Percentage   *float64       `json:"percentage"`
	ProfilePages *[]ProfilePage `json:"profilePages"`
	IsActive     *bool          `json:"isActive"`
}
