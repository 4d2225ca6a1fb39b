package service

import (
	"strconv"
	"strings"
	"time"
)

// NavScrolled reports whether the nav header gets its shadow.
func NavScrolled(scrollY float64) bool {
	return scrollY > NavScrollThreshold
}

type ParallaxFrame struct {
	TranslateY float64 `json:"translate_y"`
	Opacity    float64 `json:"opacity"`
	Apply      bool    `json:"apply"`
}

// Parallax moves the hero content while the hero is on screen.
func Parallax(scrollY, viewportHeight float64) ParallaxFrame {
	if scrollY >= viewportHeight {
		return ParallaxFrame{}
	}
	return ParallaxFrame{
		TranslateY: scrollY * ParallaxRate,
		Opacity:    1 - scrollY/(viewportHeight*ParallaxFadeFraction),
		Apply:      true,
	}
}

// RevealDelay staggers reveal animations in groups of four.
func RevealDelay(index int) time.Duration {
	return time.Duration(index%RevealStaggerGroup) * RevealStaggerStep
}

// AnchorTarget returns the element id an in-page link scrolls to.
func AnchorTarget(href string) (string, bool) {
	if href == "#" || !strings.HasPrefix(href, "#") {
		return "", false
	}
	return href[1:], true
}

// ScrollTarget is the smooth-scroll destination, leaving room for the nav.
func ScrollTarget(targetTop, pageOffset, navHeight float64) float64 {
	if navHeight <= 0 {
		navHeight = DefaultNavHeight
	}
	return targetTop + pageOffset - navHeight
}

// MenuState is the mobile menu.
type MenuState struct {
	Open bool `json:"open"`
}

func (m *MenuState) Toggle() {
	m.Open = !m.Open
}

func (m *MenuState) ClickOutside() {
	m.Open = false
}

func (m *MenuState) KeyDown(key string) {
	if key == "Escape" && m.Open {
		m.Open = false
	}
}

func (m MenuState) AriaExpanded() string {
	return strconv.FormatBool(m.Open)
}
