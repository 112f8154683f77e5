package config

// Perspective is the host's camera perspective mode.
type Perspective int

// Perspective modes.
const (
	FirstPerson Perspective = iota
	ThirdPersonBack
	ThirdPersonFront
)

func (p Perspective) String() string {
	switch p {
	case FirstPerson:
		return "first_person"
	case ThirdPersonBack:
		return "third_person_back"
	case ThirdPersonFront:
		return "third_person_front"
	default:
		return "unknown"
	}
}

// Next returns the mode that follows p in the host's cycle order.
func (p Perspective) Next() Perspective {
	return (p + 1) % 3
}

// View is the host client state the config reads and drives.
type View interface {
	// Perspective returns the active perspective mode.
	Perspective() Perspective
	// SetPerspective switches the perspective mode.
	SetPerspective(Perspective)
	// CameraRotation returns the live camera yaw and pitch in degrees.
	// ok is false when there is no camera entity.
	CameraRotation() (yaw, pitch float32, ok bool)
}

// remembered is the perspective active before the camera was enabled.
type remembered struct {
	mode Perspective
	set  bool
}
