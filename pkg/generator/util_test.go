package generator

import (
	"testing"
)

func TestIsSafeURL(t *testing.T) {
	t.Run("グローバルIPへの http URL は許可される", func(t *testing.T) {
		safe, err := isSafeURL("http://93.184.216.34/image.png")
		if err != nil || !safe {
			t.Errorf("expected safe, got safe=%v err=%v", safe, err)
		}
	})

	t.Run("不許可スキームは拒否される", func(t *testing.T) {
		for _, raw := range []string{"ftp://example.com/a.png", "file:///etc/passwd"} {
			if safe, err := isSafeURL(raw); safe || err == nil {
				t.Errorf("expected unsafe for %s", raw)
			}
		}
	})

	t.Run("パースできない文字列は拒否される", func(t *testing.T) {
		if safe, err := isSafeURL("://not-a-url"); safe || err == nil {
			t.Error("expected parse failure")
		}
	})

	t.Run("プライベート・ループバックIPは拒否される", func(t *testing.T) {
		for _, raw := range []string{
			"http://192.168.1.10/internal.png",
			"http://10.0.0.5/internal.png",
			"http://127.0.0.1/internal.png",
			"http://169.254.169.254/latest/meta-data",
		} {
			if safe, err := isSafeURL(raw); safe || err == nil {
				t.Errorf("expected unsafe for %s", raw)
			}
		}
	})
}
