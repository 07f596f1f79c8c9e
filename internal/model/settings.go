package model

// Settings are the three operator-supplied credentials, persisted as a flat
// JSON object in the local config file. Saved wholesale, never partially.
type Settings struct {
	GoogleAPIKey string `json:"google_api_key"`
	NotionToken  string `json:"notion_token"`
	NotionPageID string `json:"notion_page_id"`
}
