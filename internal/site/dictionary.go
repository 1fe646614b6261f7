// Package site renders the portfolio page for each supported locale.
package site

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/leomarzeuski/portfolio/internal/locale"
)

//go:embed dictionaries/*.json
var dictionaryFS embed.FS

type Dictionary struct {
	Meta struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"meta"`
	Nav struct {
		Home     string `json:"home"`
		About    string `json:"about"`
		Projects string `json:"projects"`
		Contact  string `json:"contact"`
		Language string `json:"language"`
	} `json:"nav"`
	Hero struct {
		Greeting    string `json:"greeting"`
		Name        string `json:"name"`
		Role        string `json:"role"`
		Description string `json:"description"`
		CTA         string `json:"cta"`
		Contact     string `json:"contact"`
	} `json:"hero"`
	About struct {
		Title      string   `json:"title"`
		Paragraphs []string `json:"paragraphs"`
		Skills     []string `json:"skills"`
	} `json:"about"`
	Projects ProjectsSection `json:"projects"`
	Contact  ContactSection  `json:"contact"`
	Footer   struct {
		Rights string `json:"rights"`
		Built  string `json:"built"`
	} `json:"footer"`
}

type ProjectsSection struct {
	Title    string           `json:"title"`
	Subtitle string           `json:"subtitle"`
	Featured string           `json:"featured"`
	Projects []ShowcaseEntry  `json:"projects"`
	Deployed DeployedMessages `json:"deployed"`
	More     struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		CTA         string `json:"cta"`
		URL         string `json:"url"`
	} `json:"more"`
}

// ShowcaseEntry is a hand-written project card.
type ShowcaseEntry struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	GitHub      string   `json:"github,omitempty"`
	Link        string   `json:"link,omitempty"`
	Featured    bool     `json:"featured,omitempty"`
}

// DeployedMessages are the states of the live project list.
type DeployedMessages struct {
	Title   string `json:"title"`
	Loading string `json:"loading"`
	Error   string `json:"error"`
	Empty   string `json:"empty"`
}

type ContactSection struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Form     struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
		Submit  string `json:"submit"`
		Sending string `json:"sending"`
		Success string `json:"success"`
		Error   string `json:"error"`
	} `json:"form"`
	Info struct {
		Email    string `json:"email"`
		Location string `json:"location"`
	} `json:"info"`
}

var (
	loadOnce     sync.Once
	dictionaries map[locale.Locale]*Dictionary
	loadErr      error
)

// LoadDictionaries parses every embedded dictionary once.
func LoadDictionaries() (map[locale.Locale]*Dictionary, error) {
	loadOnce.Do(func() {
		dictionaries = make(map[locale.Locale]*Dictionary)
		for _, l := range locale.Supported() {
			data, err := dictionaryFS.ReadFile("dictionaries/" + string(l) + ".json")
			if err != nil {
				loadErr = fmt.Errorf("read dictionary %s: %w", l, err)
				return
			}
			var d Dictionary
			if err := json.Unmarshal(data, &d); err != nil {
				loadErr = fmt.Errorf("parse dictionary %s: %w", l, err)
				return
			}
			dictionaries[l] = &d
		}
	})
	return dictionaries, loadErr
}
