// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Session: one run through every pairing, scored once completed
  - Trial: a single left/right choice within a session
  - FaceStat: shown/selected counters for one face, shared by all sessions

Nullable columns map to pointer fields (CompletedAt, AgreementScore,
ResponseTimeMs) and encode as JSON null.

# Request Types

RecordResponseRequest carries one decision:

	{
	  "session_id": "ses_1a2b3c4d",
	  "trial_number": 1,
	  "left_face": "face_07",
	  "right_face": "face_31",
	  "selected_face": "face_31",
	  "response_time_ms": 840
	}

# Response Types

  - CreateSessionResponse: session_id plus the generated pairs
  - CompleteSessionResponse: the agreement score
  - SessionWithTrials: a session and its trials in trial order
  - StatsResponse: per-face niceness, highest first
  - LeaderboardResponse: completed sessions, best score first

# Errors

Every error body is {"error": "<message>"}.
*/
package models
