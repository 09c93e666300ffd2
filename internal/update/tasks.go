package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/kapaka/internal/model"
	"github.com/sandeepkv93/kapaka/internal/persist"
	"github.com/sandeepkv93/kapaka/internal/scheduler"
)

func (m *Model) newNodeID() int {
	m.nextNodeID++
	return m.nextNodeID
}

// addTask prepends a task built from text. Blank text adds nothing and shows
// the empty-task notification instead.
func (m *Model) addTask(text string) tea.Cmd {
	task, err := model.NewTask(text)
	if err != nil {
		m.logger.Debug("rejected empty task")
		return m.showNotification(model.EmptyTaskMessage)
	}
	item := TaskItem{NodeID: m.newNodeID(), Text: task.Text}
	m.Tasks = append([]TaskItem{item}, m.Tasks...)
	m.Cursor = 0
	m.taskInput.SetValue("")
	m.checkWelcomeNote()
	m.saveTasks()
	m.logger.Info("task added", "node", item.NodeID, "count", len(m.Tasks))
	return nil
}

// removeTask handles the complete and trash controls of the task at index.
// Completion persists the flag right away and removes the row after the
// configured delay, also for a task that was already complete; trash removes
// it immediately.
func (m *Model) removeTask(index int, control RemoveControl) tea.Cmd {
	if index < 0 || index >= len(m.Tasks) {
		return nil
	}
	switch control {
	case RemoveComplete:
		node := m.Tasks[index].NodeID
		removal := m.schedule(scheduler.Event{Kind: scheduler.KindRemoveCompleted, NodeID: node}, m.completeDelay)
		if m.Tasks[index].Complete {
			m.logger.Debug("removing already completed task", "node", node)
			return removal
		}
		m.Tasks[index].Complete = true
		m.saveTasks()
		m.logger.Info("task completed", "node", node)
		return tea.Batch(m.playChimeCmd(), removal)
	case RemoveTrash:
		node := m.Tasks[index].NodeID
		m.Tasks = append(m.Tasks[:index:index], m.Tasks[index+1:]...)
		m.clampCursor()
		m.checkWelcomeNote()
		m.saveTasks()
		m.logger.Info("task removed", "node", node, "count", len(m.Tasks))
	}
	return nil
}

// removeCompletedNode finishes a delayed completion. The row may already be
// gone, in which case nothing happens.
func (m *Model) removeCompletedNode(node int) {
	index := m.indexOfNode(node)
	if index < 0 {
		m.logger.Debug("completed task already removed", "node", node)
		return
	}
	m.Tasks = append(m.Tasks[:index:index], m.Tasks[index+1:]...)
	m.clampCursor()
	m.checkWelcomeNote()
	m.saveTasks()
}

func (m Model) indexOfNode(node int) int {
	for i, t := range m.Tasks {
		if t.NodeID == node {
			return i
		}
	}
	return -1
}

func (m *Model) checkWelcomeNote() {
	m.WelcomeHidden = len(m.Tasks) > 0
}

func (m *Model) clampCursor() {
	if m.Cursor >= len(m.Tasks) {
		m.Cursor = len(m.Tasks) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func (m Model) snapshot() []model.Task {
	out := make([]model.Task, 0, len(m.Tasks))
	for _, t := range m.Tasks {
		out = append(out, model.Task{Text: t.Text, Complete: t.Complete})
	}
	return out
}

// saveTasks writes the rendered list in display order.
func (m *Model) saveTasks() {
	if err := persist.SaveTasks(m.ctx, m.store, m.snapshot()); err != nil {
		m.logger.Error("save tasks failed", "err", err)
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	}
}

// loadTasks renders the stored list in stored order and restores the theme.
func (m *Model) loadTasks() {
	tasks, err := persist.LoadTasks(m.ctx, m.store)
	if err != nil {
		m.logger.Warn("stored task list unreadable; starting empty", "err", err)
		m.Status = StatusBar{Text: fmt.Sprintf("could not read saved tasks: %v", err), IsError: true}
	}
	m.Tasks = make([]TaskItem, 0, len(tasks))
	for _, t := range tasks {
		m.Tasks = append(m.Tasks, TaskItem{NodeID: m.newNodeID(), Text: t.Text, Complete: t.Complete})
	}
	m.Cursor = 0
	m.checkWelcomeNote()
	m.loadTheme()
	m.logger.Info("tasks loaded", "count", len(m.Tasks))
}

func (m Model) positionIndex(pos int) (int, error) {
	if pos < 1 || pos > len(m.Tasks) {
		return -1, fmt.Errorf("no task at position %d", pos)
	}
	return pos - 1, nil
}
