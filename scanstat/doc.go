/*Package scanstat computes summary statistics of EBSD scans: the point count of each phase,
its fraction of the scan, and the mean angular deviation (MAD) and band contrast (BC) of its points.
MAD values are also binned in a Histogram.*/
package scanstat
