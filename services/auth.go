package services

import "strings"

// AddGatewayAuth agrega el header Authorization con el token configurado
// cuando la petición entrante no trae uno propio.
func AddGatewayAuth(cfg Config, headers map[string]string) map[string]string {
	if headers == nil {
		headers = make(map[string]string)
	}
	if strings.TrimSpace(headers["Authorization"]) != "" {
		return headers
	}
	if token := strings.TrimSpace(cfg.GatewayToken); token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return headers
}
