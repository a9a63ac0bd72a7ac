package env

import "strings"

type NetEnvironment struct {
	HttpHost       string   `validate:"required,lowercase,min=7"`
	HttpPort       string   `validate:"required,numeric"`
	AllowedOrigins []string `validate:"dive,url"`
}

func (e NetEnvironment) GetHttpPort() string {
	return e.HttpPort
}

func (e NetEnvironment) GetHttpHost() string {
	return e.HttpHost
}

func (e NetEnvironment) GetHostURL() string {
	return e.HttpHost + ":" + e.HttpPort
}

// ParseOrigins splits a comma separated allow-list, dropping blanks.
func ParseOrigins(raw string) []string {
	var origins []string

	for _, item := range strings.Split(raw, ",") {
		if origin := strings.TrimSpace(item); origin != "" {
			origins = append(origins, strings.TrimRight(origin, "/"))
		}
	}

	return origins
}
