package services

import (
	"context"

	"taskboard/internal/duration"
	"taskboard/internal/models"
)

// Hand-rolled counting fakes for the repository interfaces. Every
// method bumps Calls so tests can assert whether the store was touched.

type fakeTaskRepo struct {
	tasks []models.Task
	err   error
	Calls int
}

func (f *fakeTaskRepo) FindByID(_ context.Context, id int64) (*models.Task, error) {
	f.Calls++
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			t := f.tasks[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (f *fakeTaskRepo) FindByProject(_ context.Context, projectID int64) ([]models.Task, error) {
	f.Calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Task
	for _, t := range f.tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) FindByUser(_ context.Context, userID int64) ([]models.Task, error) {
	f.Calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Task
	for _, t := range f.tasks {
		if t.OwnerID == userID {
			out = append(out, t)
			continue
		}
		for _, id := range t.AssigneeIDs {
			if id == userID {
				out = append(out, t)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) FindAll(_ context.Context) ([]models.Task, error) {
	f.Calls++
	return f.tasks, f.err
}

func (f *fakeTaskRepo) UpdateTimeTaken(_ context.Context, id int64, minutes duration.Minutes) error {
	f.Calls++
	if f.err != nil {
		return f.err
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i].TimeTaken = minutes
		}
	}
	return nil
}

type fakeSubtaskRepo struct {
	subtasks []models.Subtask
	err      error
	Calls    int
}

func (f *fakeSubtaskRepo) FindByID(_ context.Context, id int64) (*models.Subtask, error) {
	f.Calls++
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.subtasks {
		if f.subtasks[i].ID == id {
			s := f.subtasks[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeSubtaskRepo) FindByParentTask(_ context.Context, taskID int64) ([]models.Subtask, error) {
	f.Calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Subtask
	for _, s := range f.subtasks {
		if s.ParentTaskID == taskID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSubtaskRepo) FindByProject(_ context.Context, projectID int64) ([]models.Subtask, error) {
	f.Calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Subtask
	for _, s := range f.subtasks {
		if s.ProjectID == projectID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSubtaskRepo) FindByUser(_ context.Context, userID int64) ([]models.Subtask, error) {
	f.Calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Subtask
	for _, s := range f.subtasks {
		if s.OwnerID == userID {
			out = append(out, s)
			continue
		}
		for _, id := range s.AssigneeIDs {
			if id == userID {
				out = append(out, s)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeSubtaskRepo) FindAll(_ context.Context) ([]models.Subtask, error) {
	f.Calls++
	return f.subtasks, f.err
}

func (f *fakeSubtaskRepo) UpdateTimeTaken(_ context.Context, id int64, minutes duration.Minutes) error {
	f.Calls++
	if f.err != nil {
		return f.err
	}
	for i := range f.subtasks {
		if f.subtasks[i].ID == id {
			f.subtasks[i].TimeTaken = minutes
		}
	}
	return nil
}

type fakeProjectRepo struct {
	projects map[int64]models.Project
	err      error
	Calls    int
}

func (f *fakeProjectRepo) FindByID(_ context.Context, id int64) (*models.Project, error) {
	f.Calls++
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.projects[id]; ok {
		return &p, nil
	}
	return nil, nil
}

type fakeUserRepo struct {
	users map[int64]models.User
	err   error
	Calls int
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*models.User, error) {
	f.Calls++
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByIDs(_ context.Context, ids []int64) (map[int64]models.User, error) {
	f.Calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[int64]models.User, len(ids))
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}
