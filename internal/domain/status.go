package domain

// Status is the workflow stage a card sits in on the board.
type Status string

// StatusInbox is the stage every card created from the terminal starts in.
const StatusInbox Status = "Inbox"
