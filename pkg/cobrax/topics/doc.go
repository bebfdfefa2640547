// Package topics provides topic-based help for Cobra CLI applications. Topics
// are markdown or text files read from an fs.FS, usually embedded in the
// binary, and are shown by "help <topic>" next to the regular command help.
package topics
