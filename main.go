package main

import "taskboard/internal/app"

// @title           Taskboard Time Reports API
// @version         1.0
// @description     Time accounting and reporting for tasks and subtasks.
// @BasePath        /
func main() {
	app.Run()
}
