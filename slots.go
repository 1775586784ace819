package shuriken

import "fmt"

// RandomSlot indexes one independent seed in a RandomState. The assignment is
// fixed: authored content replays identically only if every module keeps
// drawing from the same slot.
type RandomSlot uint8

const (
	SlotReserved0 RandomSlot = iota
	SlotReserved1
	SlotReserved2
	SlotStartColor        // 3
	SlotStartSize         // 4
	SlotStartRotation     // 5
	SlotRotationDirection // 6
	SlotStartLifetime     // 7
	SlotReserved8
	SlotReserved9
	SlotColorOverLifetime // 10
	SlotSizeOverLifetime  // 11
	SlotReserved12
	SlotSheetRow          // 13
	SlotStartFrame        // 14
	SlotFrameProgression  // 15

	RandomSlotCount = 16
)

var slotNames = [RandomSlotCount]string{
	SlotStartColor:        "start-color",
	SlotStartSize:         "start-size",
	SlotStartRotation:     "start-rotation",
	SlotRotationDirection: "rotation-direction",
	SlotStartLifetime:     "start-lifetime",
	SlotColorOverLifetime: "color-over-lifetime",
	SlotSizeOverLifetime:  "size-over-lifetime",
	SlotSheetRow:          "sheet-row",
	SlotStartFrame:        "start-frame",
	SlotFrameProgression:  "frame-progression",
}

func (s RandomSlot) String() string {
	if int(s) < RandomSlotCount && slotNames[s] != "" {
		return slotNames[s]
	}
	return fmt.Sprintf("reserved(%d)", uint8(s))
}
