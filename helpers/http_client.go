// helpers/http_client.go
package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ---------- Envoltura de respuesta del gateway ----------

// Envelope es la envoltura que devuelve el gateway. El backend es inconsistente:
// algunos recursos informan "success" y otros "status" (booleano).
type Envelope struct {
	Success *bool           `json:"success"`
	Status  json.RawMessage `json:"status,omitempty"`
	Message json.RawMessage `json:"message,omitempty"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// IsEnvelope indica si el cuerpo tenía forma de envoltura y no de entidad plana.
func (e Envelope) IsEnvelope() bool {
	if e.Success != nil {
		return true
	}
	_, isBool := e.statusBool()
	return isBool
}

// OK aplica el predicado de éxito: success==true o status==true.
func (e Envelope) OK() bool {
	if e.Success != nil && *e.Success {
		return true
	}
	v, isBool := e.statusBool()
	return isBool && v
}

// ErrorMessage prioriza message y luego error.message.
func (e Envelope) ErrorMessage() string {
	var msg string
	if len(e.Message) > 0 {
		if err := json.Unmarshal(e.Message, &msg); err != nil {
			msg = ""
		}
	}
	if strings.TrimSpace(msg) == "" && e.Error != nil {
		msg = e.Error.Message
	}
	return strings.TrimSpace(msg)
}

func (e Envelope) statusBool() (bool, bool) {
	raw := bytes.TrimSpace(e.Status)
	switch string(raw) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// DecodeEnvelope normaliza la respuesta del gateway una sola vez:
// - envoltura exitosa → decodifica data en out
// - envoltura fallida → AppError de aplicación con el mensaje del backend
// - cuerpo sin envoltura (arreglo u objeto plano) → decodifica el cuerpo completo
func DecodeEnvelope(body []byte, out any) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}
	if trimmed[0] != '{' {
		if out == nil {
			return nil
		}
		return json.Unmarshal(trimmed, out)
	}

	var env Envelope
	if err := json.Unmarshal(trimmed, &env); err != nil || !env.IsEnvelope() {
		if out == nil {
			return nil
		}
		return json.Unmarshal(trimmed, out)
	}

	if !env.OK() {
		msg := env.ErrorMessage()
		if msg == "" {
			msg = "operación fallida (success=false)"
		}
		return &AppError{Status: http.StatusUnprocessableEntity, Kind: KindApplication, Message: msg}
	}
	if out == nil || len(env.Data) == 0 || string(bytes.TrimSpace(env.Data)) == "null" {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

// ---------- Errores HTTP ----------

// HTTPError envuelve códigos de estado no exitosos para permitir un manejo granular.
// Status 0 representa un fallo de conectividad.
type HTTPError struct {
	Status  int
	Body    string
	Message string
	Err     error
}

// Error imprime el estado y cuerpo asociado.
func (e *HTTPError) Error() string {
	if e.Status == 0 && e.Err != nil {
		return fmt.Sprintf("HTTP 0: %v", e.Err)
	}
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Body)
}

// Unwrap expone la causa de transporte cuando existe.
func (e *HTTPError) Unwrap() error {
	return e.Err
}

// ---------- Cliente JSON + reintentos ----------

// RetryPolicy define cuántos reintentos adicionales se hacen y con qué espera fija.
type RetryPolicy struct {
	Attempts    int
	Backoff     time.Duration
	ShouldRetry func(error) bool
}

// NoRetry es la política por defecto: un único intento.
var NoRetry = RetryPolicy{}

// Request describe una llamada JSON al gateway.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    any
	Timeout time.Duration
	Retry   RetryPolicy
}

var sleep = func(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Do ejecuta la petición aplicando la política de reintentos de req.Retry.
func Do(ctx context.Context, req Request, out any) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Serializa body una vez
	var body []byte
	if req.Body != nil {
		var err error
		body, err = json.Marshal(req.Body)
		if err != nil {
			return err
		}
	}

	shouldRetry := req.Retry.ShouldRetry
	if shouldRetry == nil {
		shouldRetry = IsTransportOrHTTPError
	}

	var attempt int
	for {
		err := doOnce(ctx, req, body, out)
		if err == nil {
			return nil
		}
		if attempt >= req.Retry.Attempts || !shouldRetry(err) {
			return err
		}
		if serr := sleep(ctx, req.Retry.Backoff); serr != nil {
			return err
		}
		attempt++
	}
}

func doOnce(ctx context.Context, r Request, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range r.Headers {
		if v != "" {
			req.Header.Set(k, v)
		}
	}

	client := &http.Client{Timeout: r.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return &HTTPError{Status: 0, Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return &HTTPError{Status: 0, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		he := &HTTPError{
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(bodyBytes)),
		}
		var env Envelope
		if json.Unmarshal(bodyBytes, &env) == nil {
			he.Message = env.ErrorMessage()
		}
		return he
	}

	return DecodeEnvelope(bodyBytes, out)
}

// IsTransportOrHTTPError reintenta cualquier fallo de red o status no exitoso,
// pero nunca fallos de aplicación (success=false) ni errores de decodificación.
func IsTransportOrHTTPError(err error) bool {
	var he *HTTPError
	return errors.As(err, &he)
}
