package schedule

// yamlSchedule is the YAML document shape of a Schedule.
type yamlSchedule struct {
	Participants []string  `yaml:"participants,omitempty,flow"`
	Days         []yamlDay `yaml:"days"`
}

type yamlDay struct {
	Day     int         `yaml:"day"`
	Meetups [][2]string `yaml:"meetups,flow"`
}

// MarshalYAML implements yaml.Marshaler (gopkg.in/yaml.v3). Meetups are
// rendered with resolved names; days are numbered from 1.
func (s *Schedule) MarshalYAML() (interface{}, error) {
	var out = yamlSchedule{
		Participants: s.names,
		Days:         make([]yamlDay, 0, len(s.days)),
	}
	for i, d := range s.days {
		var yd = yamlDay{Day: i + 1, Meetups: make([][2]string, 0, len(d))}
		for _, m := range d {
			yd.Meetups = append(yd.Meetups, [2]string{s.Name(m.A), s.Name(m.B)})
		}
		out.Days = append(out.Days, yd)
	}
	return out, nil
}
