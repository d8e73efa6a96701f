//go:build windows

package main

import "golang.org/x/sys/windows"

// terminalSize returns the size of the console window on fd, or 80x24 when
// fd is not a console.
func terminalSize(fd int) (width, height int) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(fd), &info); err != nil {
		return 80, 24
	}
	return int(info.Window.Right-info.Window.Left) + 1, int(info.Window.Bottom-info.Window.Top) + 1
}
