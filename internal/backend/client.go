package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client est l'unique point d'accès aux ressources de données hébergées.
// Le backend expose une surface de requêtage REST : filtres en query string
// (colonne=eq.valeur), jointure embarquée via le paramètre select
// (ex: select=*,categories(name)).
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		HTTPClient: &http.Client{},
	}
}

func (c *Client) do(ctx context.Context, method, table string, params url.Values, body any, prefer string) ([]byte, error) {
	endpoint := c.BaseURL + "/rest/v1/" + table
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &BackendError{Message: "corps de requête invalide: " + err.Error()}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, &BackendError{Message: err.Error()}
	}
	req.Header.Set("apikey", c.APIKey)
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &BackendError{Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &BackendError{Status: resp.StatusCode, Message: err.Error()}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &BackendError{Status: resp.StatusCode, Message: errorMessage(data)}
	}
	return data, nil
}

// errorMessage extrait le message d'erreur du backend quand il y en a un
func errorMessage(data []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &payload) == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(data))
}

func decodeRows(data []byte) ([]map[string]any, error) {
	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, &BackendError{Message: "réponse backend illisible: " + err.Error()}
	}
	return rows, nil
}

// Select récupère les lignes d'une table. Les jointures embarquées passent
// par params (select=...).
func (c *Client) Select(ctx context.Context, table string, params url.Values) ([]map[string]any, error) {
	data, err := c.do(ctx, http.MethodGet, table, params, nil, "")
	if err != nil {
		return nil, err
	}
	return decodeRows(data)
}

// MaybeSingle retourne la première ligne correspondant au filtre,
// ou nil si aucune ligne ne correspond (ce n'est pas une erreur).
func (c *Client) MaybeSingle(ctx context.Context, table string, params url.Values) (map[string]any, error) {
	rows, err := c.Select(ctx, table, params)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// Insert crée une ligne et retourne sa représentation. selectCols permet de
// rapatrier une jointure sur la ligne créée.
func (c *Client) Insert(ctx context.Context, table string, row any, selectCols string) (map[string]any, error) {
	params := url.Values{}
	if selectCols != "" {
		params.Set("select", selectCols)
	}
	data, err := c.do(ctx, http.MethodPost, table, params, row, "return=representation")
	if err != nil {
		return nil, err
	}
	rows, err := decodeRows(data)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &BackendError{Message: "insertion sans représentation retournée"}
	}
	return rows[0], nil
}

// Update modifie les lignes correspondant au filtre et retourne la première
// représentation mise à jour.
func (c *Client) Update(ctx context.Context, table string, params url.Values, row any, selectCols string) (map[string]any, error) {
	if selectCols != "" {
		params.Set("select", selectCols)
	}
	data, err := c.do(ctx, http.MethodPatch, table, params, row, "return=representation")
	if err != nil {
		return nil, err
	}
	rows, err := decodeRows(data)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &BackendError{Message: "aucune ligne mise à jour"}
	}
	return rows[0], nil
}

// Delete supprime les lignes correspondant au filtre
func (c *Client) Delete(ctx context.Context, table string, params url.Values) error {
	_, err := c.do(ctx, http.MethodDelete, table, params, nil, "")
	return err
}
