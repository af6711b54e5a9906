// Package services defines the business logic for accounts, topics, questions,
// feedback, profiles, and notifications. This file centralizes common
// service-level error values so that they can be consistently returned by
// service methods and checked by callers.
//
// These errors are intended for internal use by the service layer and translation
// into user-facing messages or HTTP status codes should be performed at the
// handler/controller layer.
package services

import "errors"

// Account-related errors.
var (
	// ErrUserExists indicates that the (email, role) pair is already registered.
	ErrUserExists = errors.New("account already exists for this email and role")

	// ErrInvalidCredentials is returned when login fails, without revealing
	// whether the account exists or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidRole is returned when a role value is outside the allowed set
	// (listener or speaker).
	ErrInvalidRole = errors.New("role must be listener or speaker")

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// Topic-related errors.
var (
	// ErrTopicNotFound indicates that the requested topic does not exist or is
	// not accessible to the current user.
	ErrTopicNotFound = errors.New("topic not found")

	// ErrDuplicateTopic is returned when a speaker attempts to create or
	// rename a topic to a name they already use.
	ErrDuplicateTopic = errors.New("topic name already in use")

	// ErrInvalidTopic is returned when topic fields fail validation (empty
	// name, end time not after start time, unknown status).
	ErrInvalidTopic = errors.New("invalid topic")
)

// Question-related errors.
var (
	// ErrQuestionNotFound indicates that the requested question does not exist
	// or is not accessible to the current user.
	ErrQuestionNotFound = errors.New("question not found")

	// ErrEmptyQuestion is returned when a submission contains no content.
	ErrEmptyQuestion = errors.New("question content is empty")

	// ErrQuestionTooLong is returned when a submission exceeds the maximum
	// configured length limit.
	ErrQuestionTooLong = errors.New("question content too long")

	// ErrInvalidStatus is returned when a triage status is outside the
	// allowed set (pending, approved, rejected).
	ErrInvalidStatus = errors.New("status must be pending, approved, or rejected")

	// ErrNotQuestionOwner is returned when a speaker attempts to act on a
	// question addressed to another speaker's topic.
	ErrNotQuestionOwner = errors.New("question does not belong to this speaker")

	// ErrClassifierUnavailable is returned when the relevance classifier
	// cannot produce a verdict; submission is aborted (fail-closed).
	ErrClassifierUnavailable = errors.New("relevance classifier unavailable")
)

// Feedback-related errors.
var (
	// ErrInvalidRating is returned when a rating is outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrEmptyComment is returned when a feedback submission has no comment.
	ErrEmptyComment = errors.New("comment is empty")

	// ErrDuplicateFeedback is returned when a user attempts to rate a topic
	// they have already rated.
	ErrDuplicateFeedback = errors.New("feedback already exists for this topic")
)

// Notification-related errors.
var (
	// ErrNotificationNotFound indicates that the notification does not exist
	// or belongs to another user.
	ErrNotificationNotFound = errors.New("notification not found")
)

// Profile-related errors.
var (
	// ErrAvatarTooLarge is returned when an uploaded avatar exceeds the size cap.
	ErrAvatarTooLarge = errors.New("avatar exceeds maximum size")

	// ErrAvatarType is returned when an uploaded avatar is not a supported
	// image format (jpeg, jpg, png, gif).
	ErrAvatarType = errors.New("avatar must be a jpeg, png, or gif image")
)
