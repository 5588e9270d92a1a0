//go:build e2e && unix

package main

import (
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func startRegistration(t *testing.T) *TUITestFramework {
	t.Helper()
	api := startFakeAPI(t)

	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	_, err := tf.CreateWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	require.NoError(t, tf.StartApp("--base-url", api.URL, "--page-size", "10"), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Trainer Registration"), "Should show the form title")
	return tf
}

func TestHelpFlag(t *testing.T) {
	t.Parallel()

	out, err := exec.Command(binPath, "--help").CombinedOutput()
	require.NoError(t, err, "Help command should run without error")

	output := string(out)
	require.True(t, strings.Contains(output, "Usage"), "Help should contain usage")
	require.True(t, strings.Contains(output, "--base-url"), "Help should list the base URL flag")
	require.True(t, strings.Contains(output, "--summary"), "Help should list the summary flag")
}

func TestValidationErrorsShown(t *testing.T) {
	t.Parallel()
	tf := startRegistration(t)

	require.NoError(t, tf.Type("A"))
	require.NoError(t, tf.Submit())

	if !tf.SeePlain("Minimum 2 characters") {
		tf.DumpTailOnFail(t, "validation", 4096)
		t.Fatal("Should show the first name error")
	}
	require.True(t, tf.SeePlain("You must select exactly 4"), "Should show the team error")
}

func TestOpenTeamList(t *testing.T) {
	t.Parallel()
	tf := startRegistration(t)

	require.NoError(t, tf.Tab())
	require.NoError(t, tf.Tab())
	require.NoError(t, tf.Down())

	if !tf.SeePlain("Bulbasaur") {
		tf.DumpTailOnFail(t, "open-list", 4096)
		t.Fatal("Should list the first page")
	}
	require.True(t, tf.SeePlain("Charmander"), "Should list more than one entry")
}

func TestRegisterTeam(t *testing.T) {
	t.Parallel()
	tf := startRegistration(t)

	require.NoError(t, tf.Type("Ash"))
	require.NoError(t, tf.Tab())
	require.NoError(t, tf.Type("Ketchum"))
	require.NoError(t, tf.Tab())
	require.NoError(t, tf.Down()) // open the list
	require.True(t, tf.SeePlain("Bulbasaur"), "Should list the first page")

	require.NoError(t, tf.Press(KeyEnter, KeyDown, KeyEnter, KeyDown, KeyEnter, KeyDown, KeyEnter))
	require.True(t, tf.SeePlain("4/4 selected"), "Should count the selection")

	require.NoError(t, tf.Esc())
	require.NoError(t, tf.Tab())
	require.NoError(t, tf.Enter())

	err := tf.WaitForE(func(s string) bool {
		return strings.Contains(ansiRe.ReplaceAllString(s, ""), "Trainer Ash Ketchum's Team")
	}, 5*time.Second, "Should show the team summary")
	if err != nil {
		tf.DumpTailOnFail(t, "register", 4096)
		t.Fatal(err)
	}
	require.True(t, tf.SeePlain("Ready for the Battle Tower!"))
}

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := startRegistration(t)

	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	require.NoError(t, tf.Quit())

	select {
	case exitErr := <-done:
		require.NoError(t, exitErr, "Process should exit cleanly on ctrl+c")
	case <-time.After(2 * time.Second):
		tf.DumpTailOnFail(t, "exit-failure", 4096)
		t.Fatal("Application did not exit within timeout")
	}
}
