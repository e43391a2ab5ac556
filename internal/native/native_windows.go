//go:build windows

// Package native resolves, loads and drives the vendor RPC client DLL,
// exposing it as a splendid.Session.
package native

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"splendctl/internal/logger"
	"splendctl/internal/splendid"
)

const (
	dllName       = "AsusCustomizationRpcClient.dll"
	dllSubdir     = `ModuleDll\HWSettings`
	packageFamily = "B9ECED6F.ASUSPCAssistant_qmba6cd70vzyy"

	// PACKAGE_FILTER_HEAD from appmodel.h.
	packageFilterHead = 0x00000010
)

var (
	kernel32                     = windows.NewLazySystemDLL("kernel32.dll")
	procFindPackagesByFamily     = kernel32.NewProc("FindPackagesByPackageFamily")
	procGetPackagePathByFullName = kernel32.NewProc("GetPackagePathByFullName")
)

// Session drives the loaded RPC client. It implements splendid.Session.
type Session struct {
	dll    *windows.DLL
	client uintptr
}

var _ splendid.Session = (*Session)(nil)

// emptyArg is the empty C string the set entry points require.
var emptyArg = []byte{0}

// Open locates the ASUS PC Assistant package, copies the RPC client DLL
// into the working directory, loads it, initializes a session and registers
// a callback receiver that writes into store.
func Open(store *splendid.Store) (splendid.Session, error) {
	fullName, err := findPackage()
	if err != nil {
		return nil, err
	}
	root, err := packagePath(fullName)
	if err != nil {
		return nil, err
	}
	logger.Debugf("found package %s at %s", fullName, root)

	// The DLL refuses to load from the package directory, so it is copied
	// next to us first.
	if err := copyFile(filepath.Join(root, dllSubdir, dllName), dllName); err != nil {
		return nil, fmt.Errorf("copying %s: %w", dllName, err)
	}

	dll, err := windows.LoadDLL(dllName)
	if err != nil {
		return nil, &splendid.LoadError{Name: dllName, Err: err}
	}

	s := &Session{dll: dll}
	initialize, err := s.proc(splendid.SymInitialize)
	if err != nil {
		dll.Release()
		return nil, err
	}

	var client uintptr
	code, _, _ := initialize.Call(uintptr(unsafe.Pointer(&client)))
	if code != 0 || client == 0 {
		dll.Release()
		return nil, splendid.ErrSessionInit
	}
	s.client = client

	setCallback, err := s.proc(splendid.SymSetCallback)
	if err != nil {
		s.Close()
		return nil, err
	}
	// The callback fires on a thread owned by the RPC client, zero or more
	// times per request.
	receiver := syscall.NewCallbackCDecl(func(fn, data, text uintptr) uintptr {
		store.Apply(int32(fn), int32(data), cString(text))
		return 0
	})
	setCallback.Call(receiver, s.client)

	return s, nil
}

// Get issues a query entry point; the answer arrives through the callback.
func (s *Session) Get(symbol string) error {
	p, err := s.proc(symbol)
	if err != nil {
		return err
	}
	p.Call(s.client)
	return nil
}

// SetPreset applies a color preset value: (value, "", client).
func (s *Session) SetPreset(symbol string, value uint8) error {
	p, err := s.proc(symbol)
	if err != nil {
		return err
	}
	p.Call(uintptr(value), uintptr(unsafe.Pointer(&emptyArg[0])), s.client)
	return nil
}

// SetMonochrome applies a packed e-reading value: (packed, client).
func (s *Session) SetMonochrome(packed int32) error {
	p, err := s.proc(splendid.SymSetMonochrome)
	if err != nil {
		return err
	}
	p.Call(uintptr(uint32(packed)), s.client)
	return nil
}

// SetDimming sets dimming in splendid units and returns the native result
// code.
func (s *Session) SetDimming(units int32) (int64, error) {
	p, err := s.proc(splendid.SymSetDimming)
	if err != nil {
		return 0, err
	}
	code, _, _ := p.Call(uintptr(uint32(units)), uintptr(unsafe.Pointer(&emptyArg[0])), s.client)
	return int64(code), nil
}

// Close best-effort uninitializes the RPC session and unloads the DLL.
func (s *Session) Close() error {
	if p, err := s.dll.FindProc(splendid.SymUninitialize); err == nil && s.client != 0 {
		p.Call(s.client)
	}
	return s.dll.Release()
}

func (s *Session) proc(name string) (*windows.Proc, error) {
	p, err := s.dll.FindProc(name)
	if err != nil {
		return nil, &splendid.LoadError{Name: name, Err: err}
	}
	return p, nil
}

func cString(p uintptr) string {
	if p == 0 {
		return ""
	}
	return windows.BytePtrToString((*byte)(unsafe.Pointer(p)))
}

// findPackage returns the full name of the installed ASUS PC Assistant
// package. The first call sizes the buffers, the second fills them.
func findPackage() (string, error) {
	family, err := windows.UTF16PtrFromString(packageFamily)
	if err != nil {
		return "", err
	}

	var count, bufLen uint32
	r, _, _ := procFindPackagesByFamily.Call(
		uintptr(unsafe.Pointer(family)),
		packageFilterHead,
		uintptr(unsafe.Pointer(&count)),
		0,
		uintptr(unsafe.Pointer(&bufLen)),
		0,
		0,
	)
	if syscall.Errno(r) != windows.ERROR_INSUFFICIENT_BUFFER {
		return "", &splendid.PackageError{Op: "find", Code: uint32(r)}
	}
	if count == 0 {
		return "", &splendid.PackageError{Op: "find", Code: 0}
	}

	names := make([]*uint16, count)
	buf := make([]uint16, bufLen)
	r, _, _ = procFindPackagesByFamily.Call(
		uintptr(unsafe.Pointer(family)),
		packageFilterHead,
		uintptr(unsafe.Pointer(&count)),
		uintptr(unsafe.Pointer(&names[0])),
		uintptr(unsafe.Pointer(&bufLen)),
		uintptr(unsafe.Pointer(&buf[0])),
		0,
	)
	if r != 0 {
		return "", &splendid.PackageError{Op: "find", Code: uint32(r)}
	}
	return windows.UTF16PtrToString(names[0]), nil
}

// packagePath resolves a package full name to its installation directory.
func packagePath(fullName string) (string, error) {
	name, err := windows.UTF16PtrFromString(fullName)
	if err != nil {
		return "", err
	}

	var bufLen uint32
	r, _, _ := procGetPackagePathByFullName.Call(
		uintptr(unsafe.Pointer(name)),
		uintptr(unsafe.Pointer(&bufLen)),
		0,
	)
	if syscall.Errno(r) != windows.ERROR_INSUFFICIENT_BUFFER {
		return "", &splendid.PackageError{Op: "path", Code: uint32(r)}
	}

	buf := make([]uint16, bufLen)
	r, _, _ = procGetPackagePathByFullName.Call(
		uintptr(unsafe.Pointer(name)),
		uintptr(unsafe.Pointer(&bufLen)),
		uintptr(unsafe.Pointer(&buf[0])),
	)
	if r != 0 {
		return "", &splendid.PackageError{Op: "path", Code: uint32(r)}
	}
	return windows.UTF16ToString(buf), nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
