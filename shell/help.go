package shell

// Version is reported by `help`
const Version = "1.0.0"

// HelpText is the output of `help`
const HelpText = `PyCommander v` + Version + `
Available commands:
  ls          - List directory contents
  cd [dir]    - Change directory
  pwd         - Print working directory
  mkdir [dir] - Create a new directory
  rm [path]   - Remove a file or directory
  cat [file]  - Display file content
  echo [text] - Display a line of text
  date        - Display the current date and time
  help        - Show this help message
  clear       - Clear the terminal screen

AI commands:
  ai [query]  - e.g., "ai create a new folder called test"`

// Verbs lists every command the dispatcher understands, in help order
var Verbs = []string{"ls", "cd", "pwd", "mkdir", "rm", "cat", "echo", "date", "help", "clear", "ai"}
