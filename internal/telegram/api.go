package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

// Api is a thin client for the Telegram Bot HTTP API. Only sendMessage is
// used, the bot never reads updates.
type Api struct {
	baseURL    string
	botToken   string
	httpClient *http.Client
}

func NewApi(baseURL, botToken string) *Api {
	return &Api{
		baseURL:  baseURL,
		botToken: botToken,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

func (api *Api) Enabled() bool {
	return api.botToken != ""
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type sendMessageResponse struct {
	Ok          bool   `json:"ok"`
	Description string `json:"description"`
}

func (api *Api) SendMessage(ctx context.Context, chatID, text string) error {
	if !api.Enabled() {
		return fmt.Errorf("bot token not set")
	}

	reqBytes, err := json.Marshal(sendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return fmt.Errorf("marshal send message request: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", api.baseURL, api.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBytes))
	if err != nil {
		return fmt.Errorf("create send message request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := api.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var apiResp sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("decode send message response [status %d]: %w", resp.StatusCode, err)
	}

	if !apiResp.Ok {
		return fmt.Errorf("telegram api error [status %d]: %s", resp.StatusCode, apiResp.Description)
	}

	return nil
}
