package body

// BodyPart identifies one anatomical zone tracked by the thermal model.
// The set is closed; arrays indexed by BodyPart use PartCount as their size.
type BodyPart int

const (
	Head BodyPart = iota
	Mouth
	Torso
	ArmL
	ArmR
	HandL
	HandR
	LegL
	LegR
	FootL
	FootR

	// PartCount is the number of tracked body parts.
	PartCount
)

func (p BodyPart) String() string {
	switch p {
	case Head:
		return "head"
	case Mouth:
		return "mouth"
	case Torso:
		return "torso"
	case ArmL:
		return "left arm"
	case ArmR:
		return "right arm"
	case HandL:
		return "left hand"
	case HandR:
		return "right hand"
	case LegL:
		return "left leg"
	case LegR:
		return "right leg"
	case FootL:
		return "left foot"
	case FootR:
		return "right foot"
	default:
		return "unknown"
	}
}

// Parts returns every body part in declaration order.
func Parts() []BodyPart {
	parts := make([]BodyPart, 0, PartCount)
	for p := Head; p < PartCount; p++ {
		parts = append(parts, p)
	}
	return parts
}

// heatFlowEdges lists anatomically adjacent part pairs. Equalization
// processes each edge as two one-way transfers per tick.
var heatFlowEdges = [10][2]BodyPart{
	{Torso, ArmL},
	{Torso, ArmR},
	{Torso, LegL},
	{Torso, LegR},
	{Torso, Head},
	{Head, Mouth},
	{ArmL, HandL},
	{ArmR, HandR},
	{LegL, FootL},
	{LegR, FootR},
}
