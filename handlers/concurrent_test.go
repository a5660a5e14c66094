// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/nicer-face/faces"
	"github.com/danielhkuo/nicer-face/models"
	"github.com/danielhkuo/nicer-face/store"
	"github.com/danielhkuo/nicer-face/testutil"
)

// TestConcurrentResponses verifies that simultaneous responses from many
// sessions leave every counter exact
func TestConcurrentResponses(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewResponseHandler(store.New(conn), faces.Default())

	numSessions := 8
	numTrials := 5
	sessionIDs := make([]string, numSessions)
	for i := range sessionIDs {
		sessionIDs[i] = testutil.CreateTestSession(t, conn, nil)
	}

	var successCount atomic.Int32
	var wg sync.WaitGroup

	// Every session compares face_01 with face_02; even sessions pick face_01
	for i, sessionID := range sessionIDs {
		for n := 1; n <= numTrials; n++ {
			wg.Add(1)
			go func(sessionID string, trialNumber int, pickLeft bool) {
				defer wg.Done()

				selected := "face_02"
				if pickLeft {
					selected = "face_01"
				}
				body := models.RecordResponseRequest{
					SessionID:    sessionID,
					TrialNumber:  testutil.IntPtr(trialNumber),
					LeftFace:     "face_01",
					RightFace:    "face_02",
					SelectedFace: selected,
				}
				w := httptest.NewRecorder()
				handler.RecordResponse(w, testutil.MakeRequest("POST", "/responses", body, nil))

				if w.Code == http.StatusOK {
					successCount.Add(1)
				} else {
					t.Errorf("Response failed: %d - %s", w.Code, w.Body.String())
				}
			}(sessionID, n, i%2 == 0)
		}
	}

	wg.Wait()

	total := int64(numSessions * numTrials)
	if int64(successCount.Load()) != total {
		t.Fatalf("Expected %d successful responses, got %d", total, successCount.Load())
	}

	shown1, selected1 := testutil.GetFaceStats(t, conn, "face_01")
	shown2, selected2 := testutil.GetFaceStats(t, conn, "face_02")

	if shown1 != total || shown2 != total {
		t.Errorf("Expected both faces shown %d times, got %d and %d", total, shown1, shown2)
	}
	if selected1+selected2 != total {
		t.Errorf("Expected %d selections in total, got %d", total, selected1+selected2)
	}
	if selected1 != total/2 {
		t.Errorf("Expected face_01 selected %d times, got %d", total/2, selected1)
	}
}

// TestConcurrentDuplicateTrial sends the same trial many times at once.
// Exactly one may be stored.
func TestConcurrentDuplicateTrial(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewResponseHandler(store.New(conn), faces.Default())
	sessionID := testutil.CreateTestSession(t, conn, nil)

	var okCount, conflictCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			body := models.RecordResponseRequest{
				SessionID:    sessionID,
				TrialNumber:  testutil.IntPtr(1),
				LeftFace:     "face_20",
				RightFace:    "face_21",
				SelectedFace: "face_21",
			}
			w := httptest.NewRecorder()
			handler.RecordResponse(w, testutil.MakeRequest("POST", "/responses", body, nil))

			switch w.Code {
			case http.StatusOK:
				okCount.Add(1)
			case http.StatusConflict:
				conflictCount.Add(1)
			}
		}()
	}

	wg.Wait()

	if okCount.Load() != 1 || conflictCount.Load() != 9 {
		t.Errorf("Expected 1 success and 9 conflicts, got %d and %d", okCount.Load(), conflictCount.Load())
	}
	shown, selected := testutil.GetFaceStats(t, conn, "face_21")
	if shown != 1 || selected != 1 {
		t.Errorf("Expected face_21 at 1/1, got %d/%d", selected, shown)
	}
}
