package cli

import (
	"strconv"

	showapp "github.com/alexanderramin/showmanager/internal/app"
)

func strconvID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func showappFilter(name, room, year string) showapp.SessionFilter {
	return showapp.SessionFilter{Name: name, Room: room, Year: year}
}
