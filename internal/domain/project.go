package domain

import "time"

type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ClientRef
	Status    ProjectStatus `json:"status"`
	StartDate time.Time     `json:"startDate"`
	EndDate   time.Time     `json:"endDate"`
	Budget    float64       `json:"budget"`
	Progress  int           `json:"progress"`
	Tasks     []Task        `json:"tasks,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

type Task struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Completed bool       `json:"completed"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
}

// DeriveProgress returns the completion percentage implied by the task list,
// or the stored Progress when the project has no tasks.
func (p *Project) DeriveProgress() int {
	if len(p.Tasks) == 0 {
		return p.Progress
	}
	done := 0
	for _, t := range p.Tasks {
		if t.Completed {
			done++
		}
	}
	return int(float64(done)/float64(len(p.Tasks))*100 + 0.5)
}
