package timeline

import (
	"fmt"
	"math"

	"github.com/npillmayer/keyframes/dom/style/cssom"
)

// ImportKeyframes adds the keyframe blocks of a CSS @keyframes rule to a
// timeline. Offsets (from, to, percentages) are mapped onto frame numbers
// 0…totalFrames. Only numeric declarations are imported; values like
// colors or transform functions are skipped, as are the keywords inherit
// and initial. Declarations marked !important are ignored, as they are
// in browsers.
//
// Blocks mapping to the same frame are merged, later declarations winning,
// as with CSS. Property order follows the source order of declarations.
func ImportKeyframes(tl *KeyframeTimeline, rule cssom.KeyframesRule, totalFrames int) error {
	if rule == nil {
		return fmt.Errorf("%w: no @keyframes rule", ErrInvalidFrame)
	}
	if totalFrames < 1 {
		return fmt.Errorf("%w: cannot spread @keyframes %s over %d frames",
			ErrInvalidFrame, rule.Name(), totalFrames)
	}
	imported := 0
	for _, block := range rule.Keyframes() {
		offsets, ok := cssom.KeyframeOffsets(block.Selector())
		if !ok {
			tracer().Infof("@keyframes %s: skipping block %q", rule.Name(), block.Selector())
			continue
		}
		for _, offset := range offsets {
			frame := int(math.Round(offset * float64(totalFrames)))
			for _, key := range block.Properties() {
				if block.IsImportant(key) {
					tracer().Infof("@keyframes %s: %s is !important, ignored", rule.Name(), key)
					continue
				}
				p := block.Value(key)
				if p.IsEmpty() || p.IsInherit() || p.IsInitial() {
					tracer().Infof("@keyframes %s: %s has no value of its own (%q), skipped",
						rule.Name(), key, p)
					continue
				}
				v, ok := p.Number()
				if !ok {
					tracer().Debugf("@keyframes %s: %s is not numeric, skipped", rule.Name(), key)
					continue
				}
				if err := tl.SetParam(frame, key, v); err != nil {
					return err
				}
				imported++
			}
		}
	}
	tracer().Debugf("@keyframes %s: imported %d values", rule.Name(), imported)
	return nil
}
