package task

// demoTasks are loaded by --demo so the filters have something to show.
var demoTasks = []struct {
	text      string
	completed bool
}{
	{"Complete online JavaScript course", true},
	{"Jog around the park 3x", false},
	{"10 minutes meditation", false},
	{"Read for 1 hour", false},
	{"Pick up groceries", false},
	{"Complete Todo App on Frontend Mentor", false},
}

// SeedDemo appends the sample tasks to l and returns how many were added.
func SeedDemo(l *List) int {
	added := 0
	for _, d := range demoTasks {
		t, ok := l.Add(d.text)
		if !ok {
			continue
		}
		if d.completed {
			l.Toggle(t.ID)
		}
		added++
	}
	return added
}
