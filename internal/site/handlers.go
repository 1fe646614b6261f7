package site

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/leomarzeuski/portfolio/internal/locale"
	"github.com/leomarzeuski/portfolio/internal/logging"
	"go.uber.org/zap"
)

// PageData is what the page template renders.
type PageData struct {
	Lang      string
	Dict      *Dictionary
	Languages []LanguageOption
	Year      int
}

type Handler struct {
	dictionaries map[locale.Locale]*Dictionary
	logger       *zap.Logger
	now          func() time.Time
}

func NewHandler(logger *zap.Logger) (*Handler, error) {
	dicts, err := LoadDictionaries()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{dictionaries: dicts, logger: logger, now: time.Now}, nil
}

// Register registers the page routes. The engine must have Templates() installed.
func (h *Handler) Register(r gin.IRoutes) {
	r.GET("/:lang", h.Page)
	r.GET("/:lang/", h.Page)
}

// Page renders the portfolio for the locale in the first path segment.
func (h *Handler) Page(c *gin.Context) {
	lang, ok := locale.Parse(c.Param("lang"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	dict, ok := h.dictionaries[lang]
	if !ok {
		logging.FromContext(c.Request.Context(), h.logger).LogWarnf("site.Page", "no dictionary for %s", lang)
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	supported := make([]string, 0, len(h.dictionaries))
	for _, l := range locale.Supported() {
		supported = append(supported, string(l))
	}

	c.HTML(http.StatusOK, PageTemplate, PageData{
		Lang:      string(lang),
		Dict:      dict,
		Languages: languageOptions(string(lang), supported),
		Year:      h.now().Year(),
	})
}
