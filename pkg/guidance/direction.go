package guidance

import (
	"fmt"
	"strings"

	"lintang/roadgraph/pkg/datastructure"
	"lintang/roadgraph/pkg/util"
)

const (
	UNKNOWN            = -9999
	U_TURN_UNKNOWN     = -999
	U_TURN_LEFT        = -8
	KEEP_LEFT          = -7
	TURN_SHARP_LEFT    = -3
	TURN_LEFT          = -2
	TURN_SLIGHT_LEFT   = -1
	CONTINUE_ON_STREET = 0
	TURN_SLIGHT_RIGHT  = 1
	TURN_RIGHT         = 2
	TURN_SHARP_RIGHT   = 3
	FINISH             = 4
	IGNORE             = 9999999
	KEEP_RIGHT         = 7
	U_TURN_RIGHT       = 8
	START              = 101
)

type Instruction struct {
	Point datastructure.Coordinate
	Sign  int
	Name  string
	// Distance in km travelled from Point until the next instruction.
	Distance float64
	// ETA in minutes for Distance.
	ETA float64
	// Heading is the bearing of the first segment, used by START.
	Heading  float64
	TurnType string
}

func NewInstruction(sign int, name string, p datastructure.Coordinate) Instruction {
	ins := Instruction{
		Sign:  sign,
		Name:  name,
		Point: p,
	}
	_, ins.TurnType = getDirectionDescription(sign)
	return ins
}

func (instr *Instruction) GetTurnDescription() string {
	streetName := instr.Name
	sign := instr.Sign
	var description string

	switch sign {
	case CONTINUE_ON_STREET:
		if isEmpty(streetName) {
			description = "Continue"
		} else {
			description = fmt.Sprintf("Continue onto %s", streetName)
		}
	case START:
		headingAngle := instr.Heading
		if headingAngle < 0.0 {
			headingAngle += 360
		}
		compassDir := bearingToCompass(headingAngle)
		if isEmpty(streetName) {
			description = fmt.Sprintf("Head %s", compassDir)
		} else {
			description = fmt.Sprintf("Head %s toward %s", compassDir, streetName)
		}
	case FINISH:
		description = "you have arrived at your destination"
	default:
		dir, _ := getDirectionDescription(sign)
		if dir == "" {
			description = fmt.Sprintf("unknown  %d", sign)
		} else if isEmpty(streetName) {
			description = dir
		} else {
			switch dir {
			case "Keep left", "Keep right":
				description = fmt.Sprintf("%s to continue on %s", dir, streetName)
			default:
				description = fmt.Sprintf("%s onto %s", dir, streetName)
			}
		}
	}
	return description
}

func bearingToCompass(bearing float64) string {
	if bearing < 22.5 {
		return "North"
	} else if bearing < 67.5 {
		return "North East"
	} else if bearing < 112.5 {
		return "East"
	} else if bearing < 157.5 {
		return "South East"
	} else if bearing < 202.5 {
		return "South"
	} else if bearing < 247.5 {
		return "South West"
	} else if bearing < 292.5 {
		return "West"
	} else if bearing < 337.5 {
		return "North West"
	} else {
		return "North"
	}
}

func getDirectionDescription(sign int) (string, string) {
	switch sign {
	case START:
		return "", "START"
	case FINISH:
		return "", "FINISH"
	case CONTINUE_ON_STREET:
		return "Continue", "CONTINUE_ON_STREET"
	case U_TURN_UNKNOWN:
		return "Make U-turn", "U_TURN_RIGHT"
	case U_TURN_RIGHT:
		return "Make U-turn right", "U_TURN_RIGHT"
	case U_TURN_LEFT:
		return "Make U-turn left", "U_TURN_LEFT"
	case KEEP_LEFT:
		return "Keep left", "KEEP_LEFT"
	case TURN_SHARP_LEFT:
		return "Turn sharp left", "TURN_SHARP_LEFT"
	case TURN_LEFT:
		return "Turn left", "TURN_LEFT"
	case TURN_SLIGHT_LEFT:
		return "Turn slight left", "TURN_SLIGHT_LEFT"
	case TURN_SLIGHT_RIGHT:
		return "Turn slight right", "TURN_SLIGHT_RIGHT"
	case TURN_RIGHT:
		return "Turn right", "TURN_RIGHT"
	case TURN_SHARP_RIGHT:
		return "Turn sharp right", "TURN_SHARP_RIGHT"
	case KEEP_RIGHT:
		return "Keep right", "KEEP_RIGHT"
	default:
		return "", ""
	}
}

func isEmpty(str string) bool {
	return strings.TrimSpace(str) == ""
}

type DrivingInstruction struct {
	Instruction string                   `json:"instruction"`
	Point       datastructure.Coordinate `json:"turn_point"`
	StreetName  string                   `json:"street_name"`
	Distance    float64                  `json:"distance"`
	ETA         float64                  `json:"eta"`
	TurnType    string                   `json:"turn_type"`
}

func NewDrivingInstruction(ins Instruction) DrivingInstruction {
	return DrivingInstruction{
		Instruction: ins.GetTurnDescription(),
		Point:       ins.Point,
		StreetName:  ins.Name,
		Distance:    util.RoundFloat(ins.Distance, 3),
		ETA:         util.RoundFloat(ins.ETA, 2),
		TurnType:    ins.TurnType,
	}
}
