package keystate

// Keycode constants, valued as Linux input event codes. The evdev backend
// reports these directly; other backends map them to the platform's keys.
const (
	KeyEsc        Keycode = 1
	Key1          Keycode = 2
	Key2          Keycode = 3
	Key3          Keycode = 4
	Key4          Keycode = 5
	Key5          Keycode = 6
	Key6          Keycode = 7
	Key7          Keycode = 8
	Key8          Keycode = 9
	Key9          Keycode = 10
	Key0          Keycode = 11
	KeyMinus      Keycode = 12
	KeyEqual      Keycode = 13
	KeyBackspace  Keycode = 14
	KeyTab        Keycode = 15
	KeyQ          Keycode = 16
	KeyW          Keycode = 17
	KeyE          Keycode = 18
	KeyR          Keycode = 19
	KeyT          Keycode = 20
	KeyY          Keycode = 21
	KeyU          Keycode = 22
	KeyI          Keycode = 23
	KeyO          Keycode = 24
	KeyP          Keycode = 25
	KeyEnter      Keycode = 28
	KeyLeftCtrl   Keycode = 29
	KeyA          Keycode = 30
	KeyS          Keycode = 31
	KeyD          Keycode = 32
	KeyF          Keycode = 33
	KeyG          Keycode = 34
	KeyH          Keycode = 35
	KeyJ          Keycode = 36
	KeyK          Keycode = 37
	KeyL          Keycode = 38
	KeyLeftShift  Keycode = 42
	KeyZ          Keycode = 44
	KeyX          Keycode = 45
	KeyC          Keycode = 46
	KeyV          Keycode = 47
	KeyB          Keycode = 48
	KeyN          Keycode = 49
	KeyM          Keycode = 50
	KeyRightShift Keycode = 54
	KeyLeftAlt    Keycode = 56
	KeySpace      Keycode = 57
	KeyF1         Keycode = 59
	KeyF2         Keycode = 60
	KeyF3         Keycode = 61
	KeyF4         Keycode = 62
	KeyF5         Keycode = 63
	KeyF6         Keycode = 64
	KeyF7         Keycode = 65
	KeyF8         Keycode = 66
	KeyF9         Keycode = 67
	KeyF10        Keycode = 68
	KeyF11        Keycode = 87
	KeyF12        Keycode = 88
	KeyRightCtrl  Keycode = 97
	KeyRightAlt   Keycode = 100
	KeyHome       Keycode = 102
	KeyUp         Keycode = 103
	KeyPageUp     Keycode = 104
	KeyLeft       Keycode = 105
	KeyRight      Keycode = 106
	KeyEnd        Keycode = 107
	KeyDown       Keycode = 108
	KeyPageDown   Keycode = 109
	KeyInsert     Keycode = 110
	KeyDelete     Keycode = 111
	KeyLeftMeta   Keycode = 125
	KeyRightMeta  Keycode = 126
)
