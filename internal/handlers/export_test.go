package handlers

var RespondErrorForTest = respondError
