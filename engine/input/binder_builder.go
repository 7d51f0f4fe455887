package input

import (
	"github.com/Carmen-Shannon/oxy-camutils/engine/manipulator"
	"github.com/rs/zerolog"
)

// BinderOption is a functional option for configuring a Binder.
type BinderOption func(*binderImpl)

// WithBookmarkSlot binds a bookmark to a number key.
//
// Parameters:
//   - slot: the number key, 1 through 9
//   - bm: the bookmark to jump to
//
// Returns:
//   - BinderOption: functional option to bind the slot
func WithBookmarkSlot(slot int, bm manipulator.Bookmark) BinderOption {
	return func(b *binderImpl) {
		if slot < 1 || slot > 9 {
			return
		}
		b.slots[slot] = bm
	}
}

// WithScrollScale scales wheel deltas before they reach Zoom.
//
// Parameters:
//   - scale: multiplier for scroll input
//
// Returns:
//   - BinderOption: functional option to set the scroll scale
func WithScrollScale(scale float64) BinderOption {
	return func(b *binderImpl) {
		b.scrollScale = scale
	}
}

// WithOnBookmark sets the callback receiving the bookmark reported by the P key.
//
// Parameters:
//   - callback: function receiving the current bookmark
//
// Returns:
//   - BinderOption: functional option to set the callback
func WithOnBookmark(callback func(manipulator.Bookmark)) BinderOption {
	return func(b *binderImpl) {
		b.onBookmark = callback
	}
}

// WithBinderLogger sets the binder's logger.
//
// Parameters:
//   - logger: the zerolog logger
//
// Returns:
//   - BinderOption: functional option to set the logger
func WithBinderLogger(logger zerolog.Logger) BinderOption {
	return func(b *binderImpl) {
		b.logger = logger
	}
}
