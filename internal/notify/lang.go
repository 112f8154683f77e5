package notify

import (
	"fmt"
	"strings"
)

// Lang is a translation table from keys to format strings with %s verbs.
type Lang map[string]string

// EnUS is the built in English table.
var EnUS = Lang{
	KeyEnabled:  "Orthographic camera enabled",
	KeyDisabled: "Orthographic camera disabled",
	KeyFixed:    "Camera fixed",
	KeyUnfixed:  "Camera unfixed",
	KeyScale:    "Scale: %s, %s",

	"orthocamera.key.toggle":                    "Toggle orthographic camera",
	"orthocamera.key.scale_increase":            "Increase scale",
	"orthocamera.key.scale_decrease":            "Decrease scale",
	"orthocamera.key.options":                   "Open options",
	"orthocamera.key.fix_camera":                "Fix camera",
	"orthocamera.key.fixed_camera_rotate_up":    "Rotate fixed camera up",
	"orthocamera.key.fixed_camera_rotate_down":  "Rotate fixed camera down",
	"orthocamera.key.fixed_camera_rotate_left":  "Rotate fixed camera left",
	"orthocamera.key.fixed_camera_rotate_right": "Rotate fixed camera right",

	"orthocamera.config.title":                "Orthographic Camera Options",
	"orthocamera.config.enabled":              "Enabled",
	"orthocamera.config.save_enabled_state":   "Remember enabled state",
	"orthocamera.config.scale_x":              "Scale X",
	"orthocamera.config.scale_y":              "Scale Y",
	"orthocamera.config.min_distance":         "Min distance",
	"orthocamera.config.max_distance":         "Max distance",
	"orthocamera.config.fixed":                "Fixed",
	"orthocamera.config.fixed_yaw":            "Fixed yaw",
	"orthocamera.config.fixed_pitch":          "Fixed pitch",
	"orthocamera.config.fixed_rotate_speed_y": "Yaw rotate speed",
	"orthocamera.config.fixed_rotate_speed_x": "Pitch rotate speed",
	"orthocamera.config.auto_third_person":    "Auto third person",
}

// Translate renders m. Unknown keys render as the key followed by the arguments.
func (l Lang) Translate(m Message) string {
	format, ok := l[m.Key]
	if !ok {
		if len(m.Args) == 0 {
			return m.Key
		}
		return m.Key + " " + strings.Join(m.Args, " ")
	}
	args := make([]interface{}, len(m.Args))
	for i, a := range m.Args {
		args[i] = a
	}
	if strings.Count(format, "%s") != len(args) {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// Text translates a bare key.
func (l Lang) Text(key string) string {
	return l.Translate(New(key))
}
