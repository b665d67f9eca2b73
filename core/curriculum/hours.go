package curriculum

// HourDistribution breaks one semester offering's workload into the five
// instructional-hour buckets. It is a plain value; a zero bucket simply means
// no hours of that kind.
type HourDistribution struct {
	Lecture    int `json:"lecture"`
	Lab        int `json:"lab"`
	Practice   int `json:"practice"`
	Seminar    int `json:"seminar"`
	Individual int `json:"individual"`
}

// TotalHours sums all five buckets.
func (h HourDistribution) TotalHours() int {
	return h.Lecture + h.Lab + h.Practice + h.Seminar + h.Individual
}

// InstructionalHours sums the contact-time buckets, i.e. everything but
// individual study.
func (h HourDistribution) InstructionalHours() int {
	return h.Lecture + h.Lab + h.Practice + h.Seminar
}
