// Package mappropanimlist decodes the members of the bm_anime_list.narc
// archive.
package mappropanimlist

import (
	"encoding/binary"
	"fmt"
	"io"
)

// FlagDeferredLoading is set when loading the animations for a map prop
// model is deferred until needed (e.g. building doors).
const FlagDeferredLoading uint8 = 0x01

// FlagDeferredAddToRenderObject is set when adding the animations to the
// render object is deferred (e.g. honey trees shaking).
const FlagDeferredAddToRenderObject uint8 = 0x02

// MaxAnimations is the maximum number of animations a map prop can load.
const MaxAnimations = 4

// invalidAnimationID marks the end of the animation ID list.
const invalidAnimationID uint32 = 0xFFFFFFFF

// MapPropAnimationList lists the animations a map prop model can play.
type MapPropAnimationList struct {
	// AnimationIDs indexes the bm_anime.narc archive. May be empty.
	AnimationIDs []uint32

	DeferredLoading            bool
	DeferredAddToRenderObject  bool
	IsBicycleSlope             bool
}

// Parse decodes a MapPropAnimationList record.
func Parse(b []byte) (MapPropAnimationList, error) {
	// byte 0: "has animations" flag, unused beyond its presence
	if len(b) < 4 {
		return MapPropAnimationList{}, fmt.Errorf("mappropanimlist: %w", io.ErrUnexpectedEOF)
	}

	rawFlags := b[1]
	rawIsBicycleSlope := b[2]
	// byte 3: dummy

	out := MapPropAnimationList{
		DeferredLoading:           rawFlags&FlagDeferredLoading != 0,
		DeferredAddToRenderObject: rawFlags&FlagDeferredAddToRenderObject != 0,
		IsBicycleSlope:            rawIsBicycleSlope != 0,
	}

	cursor := 4
	for i := 0; i < MaxAnimations; i++ {
		if cursor+4 > len(b) {
			return MapPropAnimationList{}, fmt.Errorf("mappropanimlist: %w", io.ErrUnexpectedEOF)
		}

		id := binary.LittleEndian.Uint32(b[cursor : cursor+4])
		cursor += 4

		if id == invalidAnimationID {
			break
		}

		out.AnimationIDs = append(out.AnimationIDs, id)
	}

	return out, nil
}
