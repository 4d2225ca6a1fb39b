package http

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"market-master/service"
)

const maxRevealCount = 500

// PageHandler answers the page script's layout questions: nav shadow,
// parallax, reveal stagger, anchor scroll offsets and the mobile menu.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func queryFloat(r *http.Request, name string) (float64, bool) {
	v, err := strconv.ParseFloat(r.URL.Query().Get(name), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Scroll takes ?y=&viewport= and reports the nav and hero state.
func (h *PageHandler) Scroll(w http.ResponseWriter, r *http.Request) {
	y, ok := queryFloat(r, "y")
	viewport, ok2 := queryFloat(r, "viewport")
	if !ok || !ok2 || viewport <= 0 {
		writeError(w, http.StatusBadRequest, "y and a positive viewport are required")
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"nav_scrolled": service.NavScrolled(y),
			"parallax":     service.Parallax(y, viewport),
		},
	})
}

// Reveal lists the animation delay, in milliseconds, of ?count= elements.
func (h *PageHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	count, err := strconv.Atoi(r.URL.Query().Get("count"))
	if err != nil || count < 0 || count > maxRevealCount {
		writeError(w, http.StatusBadRequest, "count must be between 0 and 500")
		return
	}
	delays := make([]int64, count)
	for i := range delays {
		delays[i] = service.RevealDelay(i).Milliseconds()
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: map[string]interface{}{"delays_ms": delays}})
}

// ScrollTarget resolves ?href=#id&top=&offset=&nav_height= to the scroll
// position that leaves the target just below the nav.
func (h *PageHandler) ScrollTarget(w http.ResponseWriter, r *http.Request) {
	id, ok := service.AnchorTarget(r.URL.Query().Get("href"))
	if !ok {
		writeError(w, http.StatusBadRequest, "href is not an in-page anchor")
		return
	}
	top, ok := queryFloat(r, "top")
	if !ok {
		writeError(w, http.StatusBadRequest, "top must be a number")
		return
	}
	offset, _ := queryFloat(r, "offset")
	navHeight, _ := queryFloat(r, "nav_height")

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"id": id,
			"y":  service.ScrollTarget(top, offset, navHeight),
		},
	})
}

// MenuRequest is one mobile menu event applied to the current state.
type MenuRequest struct {
	Open  bool   `json:"open"`
	Event string `json:"event"` // toggle, click-outside, keydown
	Key   string `json:"key,omitempty"`
}

func (h *PageHandler) Menu(w http.ResponseWriter, r *http.Request) {
	var req MenuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	menu := service.MenuState{Open: req.Open}
	switch req.Event {
	case "toggle":
		menu.Toggle()
	case "click-outside":
		menu.ClickOutside()
	case "keydown":
		menu.KeyDown(req.Key)
	default:
		writeError(w, http.StatusBadRequest, "unknown menu event")
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"open":          menu.Open,
			"aria_expanded": menu.AriaExpanded(),
		},
	})
}
